// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete quad CLI command tree.
package commands

import (
	"fmt"
	"strings"

	"github.com/quad-market/quad/cmd/quad/cli"
	"github.com/quad-market/quad/lib/version"
)

// Execute runs the quad command tree. The global --config flag is
// stripped here so every subcommand shares it without declaring it.
func Execute(args []string) error {
	rest, path, err := splitConfigFlag(args)
	if err != nil {
		return err
	}
	configPath = path
	return Root().Execute(rest)
}

// splitConfigFlag removes --config <file> (or --config=<file>) from
// args and returns the remaining args and the extracted path.
func splitConfigFlag(args []string) ([]string, string, error) {
	var rest []string
	var path string
	for index := 0; index < len(args); index++ {
		arg := args[index]
		switch {
		case arg == "--config":
			if index+1 >= len(args) {
				return nil, "", fmt.Errorf("flag needs an argument: --config")
			}
			index++
			path = args[index]
		case strings.HasPrefix(arg, "--config="):
			path = strings.TrimPrefix(arg, "--config=")
		default:
			rest = append(rest, arg)
		}
	}
	return rest, path, nil
}

// Root builds and returns the complete quad CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "quad",
		Description: `Quad: campus peer-to-peer marketplace client.

Browse listings, negotiate offers, and rate counterparties on the
campus marketplace, from the terminal. Run "quad viewer" for the
interactive TUI.

Every command honors the global --config <file> flag and the
QUAD_CONFIG environment variable for selecting a config file.`,
		Subcommands: []*cli.Command{
			loginCommand(),
			signupCommand(),
			logoutCommand(),
			whoamiCommand(),
			itemsCommand(),
			offersCommand(),
			rateCommand(),
			healthCommand(),
			viewerCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("quad %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Log in (saves a local session)",
				Command:     "quad login priya@example.edu",
			},
			{
				Description: "Search the catalog",
				Command:     `quad items search anatomy --campus "CMC Vellore"`,
			},
			{
				Description: "Settle an incoming offer",
				Command:     "quad offers accept <offer-id>",
			},
			{
				Description: "Open the interactive TUI",
				Command:     "quad viewer",
			},
		},
	}
}
