package cli

import (
	"context"

	"seo-provisioner/internal/features/provisioning/domain"

	"github.com/spf13/cobra"
)

func newProvidersCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List configured providers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd.OutOrStdout(), app.service.Providers())
		},
	}
}

func newCreateCmd(app *app, provider *string) *cobra.Command {
	var (
		params     domain.CreateParams
		customerID string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			params.CustomerID = domain.Identifier(customerID)
			result, err := app.service.Create(cmd.Context(), *provider, params)
			if err != nil {
				return app.report(cmd, err)
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&customerID, "customer-id", "", "customer id in the billing system")
	flags.StringVar(&params.CustomerEmail, "email", "", "customer email")
	flags.StringVar(&params.CustomerName, "name", "", "customer full name")
	flags.StringVar(&params.CustomerPhone, "phone", "", "customer phone")
	flags.StringVar(&params.Domain, "domain", "", "domain the account is for")
	flags.StringVar(&params.PackageIdentifier, "package", "", "vendor plan id or name")
	flags.StringVar(&params.ServiceID, "service-id", "", "service id in the billing system")
	flags.StringSliceVar(&params.PromoCodes, "promo-code", nil, "promo code (repeatable)")

	return cmd
}

func newLoginCmd(app *app, provider *string) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Print a single sign-on URL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.service.Login(cmd.Context(), *provider, domain.AccountIdentifierParams{
				Username: domain.Identifier(username),
			})
			if err != nil {
				return app.report(cmd, err)
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "account reference returned by create")

	return cmd
}

func newChangePackageCmd(app *app, provider *string) *cobra.Command {
	var username, pkg string

	cmd := &cobra.Command{
		Use:   "change-package",
		Short: "Move an account to another package",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.service.ChangePackage(cmd.Context(), *provider, domain.ChangePackageParams{
				Username:          domain.Identifier(username),
				PackageIdentifier: pkg,
			})
			if err != nil {
				return app.report(cmd, err)
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "account reference returned by create")
	cmd.Flags().StringVar(&pkg, "package", "", "target plan id or name")

	return cmd
}

type accountOperation func(ctx context.Context, provider string, params domain.AccountIdentifierParams) (*domain.EmptyResult, error)

// newAccountCmd builds the suspend, unsuspend and terminate commands.
func newAccountCmd(app *app, provider *string, use, short string, run accountOperation) *cobra.Command {
	var username, domainName string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := run(cmd.Context(), *provider, domain.AccountIdentifierParams{
				Username: domain.Identifier(username),
				Domain:   domainName,
			})
			if err != nil {
				return app.report(cmd, err)
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "account reference returned by create")
	cmd.Flags().StringVar(&domainName, "domain", "", "domain of the account")

	return cmd
}
