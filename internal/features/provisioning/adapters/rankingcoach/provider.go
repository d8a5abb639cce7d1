package rankingcoach

import (
	"context"
	"net/http"
	"strings"

	"seo-provisioner/internal/core/logger"
	adapter "seo-provisioner/internal/features/provisioning/adapters"
	"seo-provisioner/internal/features/provisioning/domain"

	"go.uber.org/zap"
)

// ProviderName is the registry key of this provider.
const ProviderName = "ranking-coach"

const (
	customerStatusActive   = "active"
	customerStatusCanceled = "canceled"
)

// Provider adapts the lifecycle contract to the RankingCoach API.
type Provider struct {
	api    *Client
	logger *zap.Logger
}

// NewProvider validates the credentials and builds the API client on top of client.
func NewProvider(cfg Configuration, client *http.Client) (*Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Provider{
		api:    NewClient(client, cfg),
		logger: logger.For(ProviderName),
	}, nil
}

// Name implements ports.SeoProvider.
func (p *Provider) Name() string {
	return ProviderName
}

// About implements ports.SeoProvider.
func (p *Provider) About() domain.About {
	return domain.About{
		Name:        "Ranking Coach",
		Description: "Create, login to and delete Ranking Coach accounts",
		LogoURL:     "https://www.rankingcoach.com/favicon.ico",
	}
}

// API exposes the underlying client.
func (p *Provider) API() *Client {
	return p.api
}

// Create registers a new account bound to the requested package.
func (p *Provider) Create(ctx context.Context, params domain.CreateParams) (*domain.CreateResult, error) {
	if strings.TrimSpace(params.CustomerName) == "" {
		return nil, domain.NewError(domain.ErrValidation, "Customer name is required!")
	}

	err := p.api.CreateAccount(ctx,
		params.CustomerID.String(),
		params.CustomerEmail,
		params.CustomerName,
		params.Domain,
		params.PackageIdentifier,
	)
	if err != nil {
		return nil, p.fail("create", params.CustomerID.String(), err)
	}

	return &domain.CreateResult{
		Username:          params.CustomerID.String(),
		Domain:            params.Domain,
		PackageIdentifier: params.PackageIdentifier,
		Message:           "Account created",
	}, nil
}

// Login returns a single sign-on URL.
func (p *Provider) Login(ctx context.Context, params domain.AccountIdentifierParams) (*domain.LoginResult, error) {
	url, err := p.api.Login(ctx, params.Username.String())
	if err != nil {
		return nil, p.fail("login", params.Username.String(), err)
	}

	return &domain.LoginResult{URL: url}, nil
}

// ChangePackage moves the account to another package.
func (p *Provider) ChangePackage(ctx context.Context, params domain.ChangePackageParams) (*domain.EmptyResult, error) {
	if err := p.api.ChangePackage(ctx, params.Username.String(), params.PackageIdentifier); err != nil {
		return nil, p.fail("change_package", params.Username.String(), err)
	}

	return &domain.EmptyResult{Message: "Account updated"}, nil
}

// Suspend deactivates the account unless it is already canceled.
func (p *Provider) Suspend(ctx context.Context, params domain.AccountIdentifierParams) (*domain.EmptyResult, error) {
	ref := params.Username.String()

	lookup, err := p.api.LookupAccount(ctx, ref)
	if err != nil {
		return nil, p.fail("suspend", ref, err)
	}

	if lookup.Account.CustomerStatus == customerStatusCanceled {
		return &domain.EmptyResult{Message: "Account already suspended"}, nil
	}

	if err := p.api.Suspend(ctx, lookup.ExternalID()); err != nil {
		return nil, p.fail("suspend", ref, err)
	}

	return &domain.EmptyResult{Message: "Account suspended"}, nil
}

// Unsuspend re-activates the account unless it is already active.
func (p *Provider) Unsuspend(ctx context.Context, params domain.AccountIdentifierParams) (*domain.EmptyResult, error) {
	ref := params.Username.String()

	lookup, err := p.api.LookupAccount(ctx, ref)
	if err != nil {
		return nil, p.fail("unsuspend", ref, err)
	}

	if lookup.Account.CustomerStatus == customerStatusActive {
		return &domain.EmptyResult{Message: "Account already unsuspended"}, nil
	}

	if err := p.api.Unsuspend(ctx, lookup.ExternalID(), ""); err != nil {
		return nil, p.fail("unsuspend", ref, err)
	}

	return &domain.EmptyResult{Message: "Account unsuspended"}, nil
}

// Terminate deactivates the account; RankingCoach has no hard delete.
func (p *Provider) Terminate(ctx context.Context, params domain.AccountIdentifierParams) (*domain.EmptyResult, error) {
	if err := p.api.Terminate(ctx, params.Username.String()); err != nil {
		return nil, p.fail("terminate", params.Username.String(), err)
	}

	return &domain.EmptyResult{Message: "Account terminated"}, nil
}

func (p *Provider) fail(operation, ref string, err error) error {
	perr := adapter.ToProvisionError(err)
	p.logger.Error("Provider operation failed",
		zap.String("operation", operation),
		zap.String("account", ref),
		zap.Error(perr),
	)
	return perr
}
