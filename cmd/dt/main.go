// Package main implements the dt CLI, a terminal client for a daytask
// server.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/amonks/daytask/api"
	"github.com/amonks/daytask/internal/config"
	"github.com/amonks/daytask/internal/credentials"
	"github.com/amonks/daytask/internal/paths"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			// The server rejected the stored token; discard it so the
			// next invocation starts unauthenticated.
			if clearErr := credentials.Clear(); clearErr != nil {
				fmt.Fprintln(os.Stderr, clearErr)
			}
			fmt.Fprintln(os.Stderr, "not signed in; run 'dt login'")
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dt",
	Short: "Daytask - manage tasks from the terminal",
}

// loadConfig loads configuration for the working directory.
func loadConfig() (*config.Config, error) {
	dir, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}
	return config.Load(dir)
}

// newClient builds an API client from the config and stored credential.
func newClient() (*api.Client, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if cfg.Server.URL == "" {
		return nil, nil, errors.New("no server configured: set server.url in daytask.toml or DAYTASK_SERVER")
	}

	token, err := credentials.Load()
	if err != nil {
		return nil, nil, err
	}
	return api.New(cfg.Server.URL, api.WithToken(token)), cfg, nil
}
