// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

// quad-viewer is the interactive marketplace TUI. Designed as a quad
// CLI companion: `quad viewer` dispatches to this binary via PATH
// lookup, but it also runs standalone.
//
// With a saved session (from "quad login") the viewer opens directly
// on the browse tab; without one it starts at the login screen. An
// in-TUI login lasts for the process only — persisting a session is
// the CLI's job.
package main

import (
	"fmt"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/quad-market/quad/cmd/quad/cli"
	"github.com/quad-market/quad/lib/clock"
	"github.com/quad-market/quad/lib/config"
	"github.com/quad-market/quad/lib/market"
	"github.com/quad-market/quad/lib/marketui"
	"github.com/quad-market/quad/lib/version"
)

func main() {
	if err := run(); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var campus string
	var backendURL string
	var configPath string

	flagSet := pflag.NewFlagSet("quad-viewer", pflag.ContinueOnError)
	flagSet.StringVar(&campus, "campus", "", "preselect the browse campus filter")
	flagSet.StringVar(&backendURL, "backend", "", "gateway base URL (overrides config)")
	flagSet.StringVar(&configPath, "config", "", "config file (default: QUAD_CONFIG)")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match the quad binary.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("quad-viewer")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	configuration, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if err := configuration.Validate(); err != nil {
		return err
	}
	requestTimeout, err := configuration.Backend.Duration()
	if err != nil {
		return err
	}
	if backendURL == "" {
		backendURL = configuration.Backend.BaseURL
	}
	if campus == "" {
		campus = configuration.Viewer.Campus
	}

	client, err := market.NewClient(market.Config{
		BaseURL: backendURL,
		HTTPClient: &http.Client{
			Timeout: requestTimeout,
		},
		Clock:  clock.Real(),
		Logger: cli.NewCommandLogger(),
	})
	if err != nil {
		return err
	}

	// A saved session skips the login screen; its absence is not an
	// error here, the TUI has its own auth flow.
	session, err := cli.LoadSession(configuration.Session.File)
	if err != nil {
		session = nil
	}

	model := marketui.NewModel(client, marketui.Options{
		Session:     session,
		Campus:      campus,
		SyntaxTheme: configuration.Viewer.SyntaxTheme,
	})

	var programOptions []tea.ProgramOption
	if configuration.Viewer.AltScreen == nil || *configuration.Viewer.AltScreen {
		programOptions = append(programOptions, tea.WithAltScreen())
	}
	program := tea.NewProgram(model, programOptions...)
	_, err = program.Run()
	return err
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Quad marketplace viewer — interactive terminal UI.

Opens the campus marketplace: browse and fuzzy-filter listings, make
offers, settle incoming offers, and rate counterparties. Uses the
session saved by "quad login" when present; otherwise starts at the
login screen.

Usage:
  quad-viewer [flags]

Examples:
  # Open the viewer with the saved session
  quad viewer

  # Preselect a campus filter
  quad viewer --campus "CMC Vellore"

Flags:
%s`, flagSet.FlagUsages())
}
