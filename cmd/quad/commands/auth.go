// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/quad-market/quad/cmd/quad/cli"
	"github.com/quad-market/quad/lib/market"
)

// loginCommand returns the "login" command. On success the session is
// saved locally; every other command reads it from there.
func loginCommand() *cli.Command {
	var passwordFile string

	return &cli.Command{
		Name:    "login",
		Summary: "Log in and save the session locally",
		Description: `Log in to the marketplace gateway with an email address.

The password is prompted interactively, or read from a file with
--password-file for scripted use. On success the session is saved to
the local session file; subsequent commands use it automatically.`,
		Usage: "quad login <email> [flags]",
		Examples: []cli.Example{
			{
				Description: "Interactive login",
				Command:     "quad login priya@example.edu",
			},
			{
				Description: "Scripted login",
				Command:     "quad login priya@example.edu --password-file ~/.quad-pass",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("login", pflag.ContinueOnError)
			flagSet.StringVar(&passwordFile, "password-file", "", "read the password from this file instead of prompting")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: quad login <email>")
			}
			email := args[0]

			password, err := readPassword(passwordFile)
			if err != nil {
				return err
			}

			env, err := newEnvironment()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext()
			defer cancel()

			session, err := env.client.Login(ctx, market.LoginRequest{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}

			if err := cli.SaveSession(session, env.sessionPath()); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Logged in as %s (%s)\n", session.Name, session.UserID)
			fmt.Fprintf(os.Stderr, "Session saved to %s\n", env.sessionPath())
			return nil
		},
	}
}

// signupCommand returns the "signup" command.
func signupCommand() *cli.Command {
	var name string
	var campus string
	var passwordFile string

	return &cli.Command{
		Name:    "signup",
		Summary: "Create an account and log in",
		Description: `Create a marketplace account.

Signup logs you in immediately: the new session is saved locally the
same way "quad login" saves it.`,
		Usage: "quad signup <email> --name <name> [flags]",
		Examples: []cli.Example{
			{
				Description: "Create an account with a campus",
				Command:     `quad signup priya@example.edu --name "Priya" --campus "CMC Vellore"`,
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("signup", pflag.ContinueOnError)
			flagSet.StringVar(&name, "name", "", "display name (required)")
			flagSet.StringVar(&campus, "campus", "", "home campus")
			flagSet.StringVar(&passwordFile, "password-file", "", "read the password from this file instead of prompting")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: quad signup <email> --name <name>")
			}
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			password, err := readPassword(passwordFile)
			if err != nil {
				return err
			}

			env, err := newEnvironment()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext()
			defer cancel()

			session, err := env.client.Signup(ctx, market.SignupRequest{
				Name:     name,
				Email:    args[0],
				Password: password,
				Campus:   campus,
			})
			if err != nil {
				return err
			}

			if err := cli.SaveSession(session, env.sessionPath()); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Account created. Logged in as %s (%s)\n", session.Name, session.UserID)
			return nil
		},
	}
}

// logoutCommand returns the "logout" command. The gateway keeps no
// server-side session state, so logout deletes the local file and
// nothing else.
func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:    "logout",
		Summary: "Forget the saved session",
		Usage:   "quad logout",
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			env, err := newEnvironment()
			if err != nil {
				return err
			}
			if err := cli.DeleteSession(env.sessionPath()); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "Logged out.")
			return nil
		},
	}
}

// whoamiCommand returns the "whoami" command: the saved identity,
// optionally re-fetched from the gateway with --verify.
func whoamiCommand() *cli.Command {
	var verify bool

	return &cli.Command{
		Name:    "whoami",
		Summary: "Show the current identity",
		Description: `Display the currently logged-in identity from the saved session.

With --verify, the user record is re-fetched from the gateway to
confirm the account still exists. Without --verify, only the local
session file is read (no network access).`,
		Usage: "quad whoami [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("whoami", pflag.ContinueOnError)
			flagSet.BoolVar(&verify, "verify", false, "re-fetch the user record from the gateway")
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
			session, err := env.requireSession()
			if err != nil {
				return err
			}

			fmt.Printf("user:    %s (%s)\n", session.Name, session.UserID)
			fmt.Printf("email:   %s\n", session.Email)
			if session.Campus != "" {
				fmt.Printf("campus:  %s\n", session.Campus)
			}
			fmt.Printf("session: %s\n", env.sessionPath())

			if verify {
				ctx, cancel := commandContext()
				defer cancel()
				user, err := env.client.Profile(ctx, session.UserID)
				if err != nil {
					return fmt.Errorf("session verification failed: %w", err)
				}
				fmt.Printf("status:  verified (%s)\n", user.Name)
			}
			return nil
		},
	}
}

// readPassword reads a password for login/signup. If passwordFile is
// empty or "-", prompts interactively with echo disabled. Otherwise
// reads the file, stripping trailing newlines.
func readPassword(passwordFile string) (string, error) {
	if passwordFile != "" && passwordFile != "-" {
		data, err := os.ReadFile(passwordFile)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", passwordFile, err)
		}
		password := strings.TrimRight(string(data), "\r\n")
		if password == "" {
			return "", fmt.Errorf("file %s is empty (after stripping trailing newlines)", passwordFile)
		}
		return password, nil
	}

	stdinFileDescriptor := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFileDescriptor) {
		return "", fmt.Errorf("no terminal available for interactive password prompt (use --password-file)")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	passwordBytes, err := term.ReadPassword(stdinFileDescriptor)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	if len(passwordBytes) == 0 {
		return "", fmt.Errorf("empty password")
	}
	return string(passwordBytes), nil
}
