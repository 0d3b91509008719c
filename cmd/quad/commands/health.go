// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/quad-market/quad/cmd/quad/cli"
	"github.com/quad-market/quad/lib/clock"
	"github.com/quad-market/quad/lib/market"
)

// healthPollInterval is how often --wait re-probes the gateway.
const healthPollInterval = 2 * time.Second

// healthCommand returns the "health" command: a single probe of the
// gateway root endpoint, or with --wait a poll loop for use in start
// scripts. A timed-out wait exits 1 without an extra error line.
func healthCommand() *cli.Command {
	var wait bool
	var timeout time.Duration

	return &cli.Command{
		Name:    "health",
		Summary: "Check that the gateway is reachable",
		Usage:   "quad health [flags]",
		Examples: []cli.Example{
			{
				Description: "Block until the local backend is up",
				Command:     "quad health --wait --timeout 60s",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("health", pflag.ContinueOnError)
			flagSet.BoolVar(&wait, "wait", false, "keep probing until the gateway answers")
			flagSet.DurationVar(&timeout, "timeout", 30*time.Second, "give up after this long (with --wait)")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			env, err := newEnvironment()
			if err != nil {
				return err
			}

			if !wait {
				ctx, cancel := commandContext()
				defer cancel()
				status, err := env.client.Health(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("gateway %s: %v\n", env.client.BaseURL(), status)
				return nil
			}

			if err := waitForHealthy(context.Background(), env.client, clock.Real(), healthPollInterval, timeout); err != nil {
				fmt.Fprintf(os.Stderr, "gateway %s not healthy after %s: %v\n",
					env.client.BaseURL(), timeout, err)
				return &cli.ExitError{Code: 1}
			}
			fmt.Printf("gateway %s is healthy\n", env.client.BaseURL())
			return nil
		},
	}
}

// healthProber is the slice of the client waitForHealthy needs.
type healthProber interface {
	Health(ctx context.Context) (map[string]any, error)
}

// waitForHealthy polls the gateway until it answers or the timeout
// elapses. Returns the last probe error on timeout.
func waitForHealthy(ctx context.Context, client healthProber, clk clock.Clock, interval, timeout time.Duration) error {
	deadline := clk.Now().Add(timeout)
	var lastErr error

	for {
		probeCtx, cancel := context.WithTimeout(ctx, interval)
		_, err := client.Health(probeCtx)
		cancel()
		if err == nil {
			return nil
		}
		lastErr = err

		if !clk.Now().Add(interval).Before(deadline) {
			return lastErr
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-clk.After(interval):
		}
	}
}

var _ healthProber = (*market.Client)(nil)
