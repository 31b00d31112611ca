// Package cli is the headless storefront front end: run the mock backend,
// walk a checkout, browse order history, play the BlackBox.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dugodofficials-cpu/customer-app-sub000/api"
	"github.com/dugodofficials-cpu/customer-app-sub000/config"
	"github.com/dugodofficials-cpu/customer-app-sub000/session"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Headless storefront client",
	Long: `Headless client for the storefront backend: cart and checkout flows,
order history, crypto payment submission, and the BlackBox puzzle.

A mock backend for local development is available via "storefront mock-server".`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newClient builds the api client plus session store from the environment.
func newClient(cfg *config.Config) (*api.Client, *session.Store, error) {
	sess := session.NewStore()
	if cfg.SessionToken != "" {
		if err := sess.Init(cfg.SessionToken); err != nil {
			return nil, nil, fmt.Errorf("failed to initialize session: %w", err)
		}
	}
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return api.New(cfg.APIBaseURL, timeout, sess), sess, nil
}
