// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/quad-market/quad/cmd/quad/cli"
	"github.com/quad-market/quad/lib/market"
)

// rateCommand returns the "rate" command.
func rateCommand() *cli.Command {
	var stars int
	var comment string
	var itemID string

	return &cli.Command{
		Name:    "rate",
		Summary: "Rate a counterparty after a trade",
		Description: `Submit a star rating for another user.

Ratings are write-once: there is no edit or delete. Tie the rating to
the traded item with --item; without it, the rating is recorded as a
general one.`,
		Usage: "quad rate <user-id> --stars <1-5> [flags]",
		Examples: []cli.Example{
			{
				Description: "Rate a seller after a pickup",
				Command:     `quad rate 64ab... --stars 5 --comment "smooth handoff" --item 64cd...`,
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("rate", pflag.ContinueOnError)
			flagSet.IntVar(&stars, "stars", 0, "rating from 1 to 5 (required)")
			flagSet.StringVar(&comment, "comment", "", "short comment")
			flagSet.StringVar(&itemID, "item", "", "item the trade was about")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: quad rate <user-id> --stars <1-5>")
			}
			if stars < 1 || stars > 5 {
				return fmt.Errorf("--stars must be between 1 and 5")
			}

			env, err := newEnvironment()
			if err != nil {
				return err
			}
			session, err := env.requireSession()
			if err != nil {
				return err
			}
			if itemID == "" {
				itemID = market.RatingItemPlaceholder
			}

			ctx, cancel := commandContext()
			defer cancel()

			_, err = env.client.CreateRating(ctx, market.CreateRatingRequest{
				RaterID: session.UserID,
				RateeID: args[0],
				ItemID:  itemID,
				Stars:   stars,
				Comment: comment,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Rated %s: %d/5\n", args[0], stars)
			return nil
		},
	}
}
