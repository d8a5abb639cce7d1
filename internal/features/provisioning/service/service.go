package service

import (
	"context"
	"fmt"
	"sort"

	"seo-provisioner/internal/features/provisioning/domain"
	"seo-provisioner/internal/features/provisioning/ports"
)

// ProviderInfo is one entry of the provider listing.
type ProviderInfo struct {
	Key string `json:"key"`
	domain.About
}

// ProvisioningService routes lifecycle calls to the provider registered under a key.
type ProvisioningService struct {
	providers map[string]ports.SeoProvider
}

// NewProvisioningService creates a new ProvisioningService with the given providers.
// A later provider replaces an earlier one with the same name.
func NewProvisioningService(providers []ports.SeoProvider) *ProvisioningService {
	registry := make(map[string]ports.SeoProvider, len(providers))
	for _, provider := range providers {
		registry[provider.Name()] = provider
	}
	return &ProvisioningService{providers: registry}
}

// Providers lists the registered providers sorted by key.
func (s *ProvisioningService) Providers() []ProviderInfo {
	infos := make([]ProviderInfo, 0, len(s.providers))
	for key, provider := range s.providers {
		infos = append(infos, ProviderInfo{Key: key, About: provider.About()})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
	return infos
}

// Provider returns the provider registered under key.
func (s *ProvisioningService) Provider(key string) (ports.SeoProvider, error) {
	provider, ok := s.providers[key]
	if !ok {
		return nil, domain.NewError(domain.ErrProviderNotSupported, fmt.Sprintf("Provider %q is not supported", key)).
			WithData("provider", key)
	}
	return provider, nil
}

// Create provisions a new account.
func (s *ProvisioningService) Create(ctx context.Context, key string, params domain.CreateParams) (*domain.CreateResult, error) {
	provider, err := s.prepare(key, &params)
	if err != nil {
		return nil, err
	}
	return provider.Create(ctx, params)
}

// Login returns a single sign-on URL for an account.
func (s *ProvisioningService) Login(ctx context.Context, key string, params domain.AccountIdentifierParams) (*domain.LoginResult, error) {
	provider, err := s.prepare(key, &params)
	if err != nil {
		return nil, err
	}
	return provider.Login(ctx, params)
}

// ChangePackage moves an account to another package.
func (s *ProvisioningService) ChangePackage(ctx context.Context, key string, params domain.ChangePackageParams) (*domain.EmptyResult, error) {
	provider, err := s.prepare(key, &params)
	if err != nil {
		return nil, err
	}
	return provider.ChangePackage(ctx, params)
}

// Suspend suspends an account.
func (s *ProvisioningService) Suspend(ctx context.Context, key string, params domain.AccountIdentifierParams) (*domain.EmptyResult, error) {
	provider, err := s.prepare(key, &params)
	if err != nil {
		return nil, err
	}
	return provider.Suspend(ctx, params)
}

// Unsuspend lifts a suspension.
func (s *ProvisioningService) Unsuspend(ctx context.Context, key string, params domain.AccountIdentifierParams) (*domain.EmptyResult, error) {
	provider, err := s.prepare(key, &params)
	if err != nil {
		return nil, err
	}
	return provider.Unsuspend(ctx, params)
}

// Terminate permanently cancels an account.
func (s *ProvisioningService) Terminate(ctx context.Context, key string, params domain.AccountIdentifierParams) (*domain.EmptyResult, error) {
	provider, err := s.prepare(key, &params)
	if err != nil {
		return nil, err
	}
	return provider.Terminate(ctx, params)
}

// prepare resolves the provider and validates params before any vendor call.
func (s *ProvisioningService) prepare(key string, params any) (ports.SeoProvider, error) {
	provider, err := s.Provider(key)
	if err != nil {
		return nil, err
	}
	if err := domain.Validate(params); err != nil {
		return nil, err
	}
	return provider, nil
}
