package marketgoo

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
const ProviderName = "marketgoo"

// Provider adapts the lifecycle contract to the Marketgoo partner API.
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
		Name:        "Marketgoo",
		Description: "Create, login to, upgrade and delete Marketgoo accounts",
		LogoURL:     "https://www.marketgoo.com/favicon.ico",
	}
}

// Create creates an account; its Marketgoo id becomes the username.
func (p *Provider) Create(ctx context.Context, params domain.CreateParams) (*domain.CreateResult, error) {
	name := strings.TrimSpace(params.CustomerName)
	if name == "" {
		name = params.Domain
	}

	id, err := p.api.CreateAccount(ctx, params.PackageIdentifier, params.Domain, name, params.CustomerEmail)
	if err != nil {
		return nil, p.fail("create", params.Domain, err)
	}

	return &domain.CreateResult{
		Username:          id,
		Domain:            params.Domain,
		PackageIdentifier: params.PackageIdentifier,
		Message:           "Account created",
	}, nil
}

// Login returns a single sign-on URL.
func (p *Provider) Login(ctx context.Context, params domain.AccountIdentifierParams) (*domain.LoginResult, error) {
	url, err := p.api.LoginURL(ctx, params.Username.String())
	if err != nil {
		return nil, p.fail("login", params.Username.String(), err)
	}
	return &domain.LoginResult{URL: url}, nil
}

// ChangePackage upgrades or downgrades the account's product.
func (p *Provider) ChangePackage(ctx context.Context, params domain.ChangePackageParams) (*domain.EmptyResult, error) {
	if err := p.api.Upgrade(ctx, params.Username.String(), params.PackageIdentifier); err != nil {
		return nil, p.fail("change_package", params.Username.String(), err)
	}
	return &domain.EmptyResult{Message: "Account updated"}, nil
}

// Suspend suspends the account.
func (p *Provider) Suspend(ctx context.Context, params domain.AccountIdentifierParams) (*domain.EmptyResult, error) {
	if err := p.api.Suspend(ctx, params.Username.String()); err != nil {
		return nil, p.fail("suspend", params.Username.String(), err)
	}
	return &domain.EmptyResult{Message: "Account suspended"}, nil
}

// Unsuspend resumes the account.
func (p *Provider) Unsuspend(ctx context.Context, params domain.AccountIdentifierParams) (*domain.EmptyResult, error) {
	if err := p.api.Resume(ctx, params.Username.String()); err != nil {
		return nil, p.fail("unsuspend", params.Username.String(), err)
	}
	return &domain.EmptyResult{Message: "Account unsuspended"}, nil
}

// Terminate deletes the account.
func (p *Provider) Terminate(ctx context.Context, params domain.AccountIdentifierParams) (*domain.EmptyResult, error) {
	if err := p.api.Delete(ctx, params.Username.String()); err != nil {
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
