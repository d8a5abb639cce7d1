package ports

import (
	"context"

	"seo-provisioner/internal/features/provisioning/domain"
)

// SeoProvider is the lifecycle contract every SEO vendor implements.
// This is a Secondary Port (Driven Port).
type SeoProvider interface {
	// Name is the registry key, e.g. "ranking-coach".
	Name() string
	// About describes the provider for listings.
	About() domain.About

	Create(ctx context.Context, params domain.CreateParams) (*domain.CreateResult, error)
	Login(ctx context.Context, params domain.AccountIdentifierParams) (*domain.LoginResult, error)
	ChangePackage(ctx context.Context, params domain.ChangePackageParams) (*domain.EmptyResult, error)
	Suspend(ctx context.Context, params domain.AccountIdentifierParams) (*domain.EmptyResult, error)
	Unsuspend(ctx context.Context, params domain.AccountIdentifierParams) (*domain.EmptyResult, error)
	Terminate(ctx context.Context, params domain.AccountIdentifierParams) (*domain.EmptyResult, error)
}
