// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "quad",
		Subcommands: []*Command{
			{
				Name: "items",
				Run: func(args []string) error {
					called = "items"
					return nil
				},
			},
			{
				Name: "offers",
				Run: func(args []string) error {
					called = "offers"
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"offers"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "offers" {
		t.Errorf("dispatched to %q, want %q", called, "offers")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "quad",
		Subcommands: []*Command{
			{
				Name: "offers",
				Subcommands: []*Command{
					{
						Name: "accept",
						Run: func(args []string) error {
							called = "offers accept"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute([]string{"offers", "accept", "offer-1"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "offers accept" {
		t.Errorf("dispatched to %q, want %q", called, "offers accept")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "offer-1" {
		t.Errorf("args = %v, want [offer-1]", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var campus string
	var limit int

	command := &Command{
		Name: "nearby",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("nearby", pflag.ContinueOnError)
			flagSet.StringVar(&campus, "campus", "", "campus filter")
			flagSet.IntVar(&limit, "limit", 20, "result cap")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	if err := command.Execute([]string{"--campus", "CMC Vellore", "--limit", "5"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if campus != "CMC Vellore" {
		t.Errorf("campus = %q", campus)
	}
	if limit != 5 {
		t.Errorf("limit = %d, want 5", limit)
	}
}

func TestCommand_Execute_UnknownSubcommandSuggests(t *testing.T) {
	root := &Command{
		Name: "quad",
		Subcommands: []*Command{
			{Name: "items", Run: func([]string) error { return nil }},
			{Name: "offers", Run: func([]string) error { return nil }},
		},
	}

	err := root.Execute([]string{"ofers"})
	if err == nil {
		t.Fatal("expected an error for an unknown subcommand")
	}
	if !strings.Contains(err.Error(), `did you mean "offers"`) {
		t.Errorf("error = %v, want an offers suggestion", err)
	}
}

func TestCommand_Execute_UnknownFlagSuggests(t *testing.T) {
	command := &Command{
		Name: "nearby",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("nearby", pflag.ContinueOnError)
			flagSet.String("campus", "", "campus filter")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--campsu", "x"})
	if err == nil {
		t.Fatal("expected an error for an unknown flag")
	}
	if !strings.Contains(err.Error(), "--campus") {
		t.Errorf("error = %v, want a --campus suggestion", err)
	}
}

func TestCommand_Execute_SubcommandRequiredWithoutArgs(t *testing.T) {
	root := &Command{
		Name: "quad",
		Subcommands: []*Command{
			{Name: "items", Run: func([]string) error { return nil }},
		},
	}

	err := root.Execute(nil)
	if err == nil || !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %v, want subcommand required", err)
	}
}

func TestCommand_PrintHelp_ListsSubcommandsAndExamples(t *testing.T) {
	root := &Command{
		Name:        "quad",
		Description: "Campus marketplace client.",
		Examples: []Example{
			{Description: "Search for textbooks", Command: "quad items search anatomy"},
		},
		Subcommands: []*Command{
			{Name: "items", Summary: "Browse and create listings"},
			{Name: "offers", Summary: "Negotiate on listings"},
		},
	}

	var buffer bytes.Buffer
	root.PrintHelp(&buffer)
	help := buffer.String()

	for _, want := range []string{
		"Campus marketplace client.",
		"items",
		"Browse and create listings",
		"quad items search anatomy",
		"Run 'quad <command> --help'",
	} {
		if !strings.Contains(help, want) {
			t.Errorf("help output missing %q:\n%s", want, help)
		}
	}
}

func TestCommand_Execute_HelpFlagShort(t *testing.T) {
	ran := false
	command := &Command{
		Name: "items",
		Run: func(args []string) error {
			ran = true
			return nil
		},
	}
	if err := command.Execute([]string{"-h"}); err != nil {
		t.Fatalf("Execute(-h) error: %v", err)
	}
	if ran {
		t.Error("-h must print help, not run the command")
	}
}
