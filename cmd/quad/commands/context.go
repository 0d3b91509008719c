// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"net/http"
	"time"

	"github.com/quad-market/quad/cmd/quad/cli"
	"github.com/quad-market/quad/lib/clock"
	"github.com/quad-market/quad/lib/config"
	"github.com/quad-market/quad/lib/market"
)

// commandTimeout bounds a single gateway call issued from the CLI.
const commandTimeout = 30 * time.Second

// configPath is the value of the global --config flag, stripped from
// the command line before dispatch. Empty means QUAD_CONFIG or the
// built-in defaults.
var configPath string

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

// environment bundles everything a command handler needs: settings,
// the gateway client, and the session file path. Built lazily at Run
// time so --help never touches the config or the network.
type environment struct {
	config *config.Config
	client *market.Client
}

func newEnvironment() (*environment, error) {
	configuration, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if err := configuration.Validate(); err != nil {
		return nil, err
	}
	requestTimeout, err := configuration.Backend.Duration()
	if err != nil {
		return nil, err
	}

	client, err := market.NewClient(market.Config{
		BaseURL: configuration.Backend.BaseURL,
		HTTPClient: &http.Client{
			Timeout: requestTimeout,
		},
		Clock:  clock.Real(),
		Logger: cli.NewCommandLogger(),
	})
	if err != nil {
		return nil, err
	}

	return &environment{config: configuration, client: client}, nil
}

func (env *environment) sessionPath() string {
	return env.config.Session.File
}

// requireSession loads the saved session or fails with a pointer to
// "quad login".
func (env *environment) requireSession() (*market.Session, error) {
	return cli.LoadSession(env.sessionPath())
}

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}
