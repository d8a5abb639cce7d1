package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"seo-provisioner/internal/features/provisioning/domain"
	"seo-provisioner/internal/features/provisioning/service"

	"github.com/spf13/cobra"
)

// DefaultProvider is used when --provider is not given.
const DefaultProvider = "ranking-coach"

type app struct {
	service       *service.ProvisioningService
	correlationID string
}

type wireFunc func() (*app, error)

// reportedError marks an error whose result was already written to stderr.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

// Execute runs the seoctl command tree.
func Execute() error {
	err := newRootCmd(wireApp).Execute()
	var reported reportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func newRootCmd(wire wireFunc) *cobra.Command {
	var provider string

	rootCmd := &cobra.Command{
		Use:           "seoctl",
		Short:         "Provision and manage SEO tool accounts",
		Long:          "seoctl drives the same account lifecycle operations as the HTTP API against the configured SEO vendors (RankingCoach, Marketgoo).",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&provider, "provider", "p", DefaultProvider, "provider key")

	app, err := wire()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newProvidersCmd(app),
		newCreateCmd(app, &provider),
		newLoginCmd(app, &provider),
		newChangePackageCmd(app, &provider),
		newAccountCmd(app, &provider, "suspend", "Suspend an account", app.service.Suspend),
		newAccountCmd(app, &provider, "unsuspend", "Unsuspend an account", app.service.Unsuspend),
		newAccountCmd(app, &provider, "terminate", "Terminate an account", app.service.Terminate),
	)

	return rootCmd
}

// errorOutput mirrors the HTTP API error body.
type errorOutput struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
	RayID   string         `json:"ray_id"`
}

func printJSON(w io.Writer, v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(encoded))
	return err
}

// report writes the error result to stderr and hands err back for the exit code.
func (a *app) report(cmd *cobra.Command, err error) error {
	out := errorOutput{Message: err.Error(), RayID: a.correlationID}
	var pe *domain.ProvisionError
	if errors.As(err, &pe) {
		out.Data = pe.Data
	}
	_ = printJSON(cmd.ErrOrStderr(), out)
	return reportedError{err}
}
