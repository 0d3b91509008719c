// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/quad-market/quad/cmd/quad/cli"
	"github.com/quad-market/quad/lib/market"
)

// offersCommand returns the "offers" command group.
func offersCommand() *cli.Command {
	return &cli.Command{
		Name:    "offers",
		Summary: "Make and settle offers",
		Subcommands: []*cli.Command{
			offersListCommand(),
			offersMakeCommand(),
			offersActionCommand("accept", market.ActionAccept,
				"Accept a pending offer on one of your listings"),
			offersActionCommand("decline", market.ActionDecline,
				"Decline a pending offer on one of your listings"),
		},
	}
}

func offersListCommand() *cli.Command {
	var jsonOutput bool
	var pendingOnly bool

	return &cli.Command{
		Name:    "list",
		Summary: "List your offers, incoming and outgoing",
		Usage:   "quad offers list [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.BoolVar(&jsonOutput, "json", false, "print raw JSON instead of a table")
			flagSet.BoolVar(&pendingOnly, "pending", false, "only show offers awaiting settlement")
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

			ctx, cancel := commandContext()
			defer cancel()

			offers, err := env.client.OffersForUser(ctx, session.UserID)
			if err != nil {
				return err
			}
			if pendingOnly {
				var pending []market.Offer
				for _, offer := range offers {
					if offer.Status == market.OfferPending {
						pending = append(pending, offer)
					}
				}
				offers = pending
			}

			if jsonOutput {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(offers)
			}

			if len(offers) == 0 {
				fmt.Fprintln(os.Stderr, "No offers.")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tITEM\tDIRECTION\tPRICE\tSTATUS\tMESSAGE")
			for _, offer := range offers {
				direction := "outgoing → " + offer.SellerID
				if offer.SellerID == session.UserID {
					direction = "incoming ← " + offer.BuyerID
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t₹%.0f\t%s\t%s\n",
					offer.ID, offer.ItemID, direction, offer.OfferedPrice, offer.Status, offer.Message)
			}
			return tw.Flush()
		},
	}
}

func offersMakeCommand() *cli.Command {
	var price float64
	var message string

	return &cli.Command{
		Name:    "make",
		Summary: "Make an offer on a listing",
		Usage:   "quad offers make <item-id> --price <amount> [flags]",
		Examples: []cli.Example{
			{
				Description: "Offer below asking with a note",
				Command:     `quad offers make 64ab... --price 650 --message "can pick up today"`,
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("make", pflag.ContinueOnError)
			flagSet.Float64Var(&price, "price", 0, "offered price (required)")
			flagSet.StringVar(&message, "message", "", "note to the seller")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: quad offers make <item-id> --price <amount>")
			}

			env, err := newEnvironment()
			if err != nil {
				return err
			}
			session, err := env.requireSession()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext()
			defer cancel()

			offer, err := env.client.CreateOffer(ctx, market.CreateOfferRequest{
				ItemID:       args[0],
				BuyerID:      session.UserID,
				OfferedPrice: price,
				Message:      message,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Offer %s created: ₹%.0f on %s (%s)\n",
				offer.ID, offer.OfferedPrice, offer.ItemID, offer.Status)
			return nil
		},
	}
}

// offersActionCommand builds accept/decline; the two differ only in
// the action sent to the gateway.
func offersActionCommand(name string, action market.OfferAction, summary string) *cli.Command {
	return &cli.Command{
		Name:    name,
		Summary: summary,
		Usage:   fmt.Sprintf("quad offers %s <offer-id>", name),
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: quad offers %s <offer-id>", name)
			}

			env, err := newEnvironment()
			if err != nil {
				return err
			}
			if _, err := env.requireSession(); err != nil {
				return err
			}

			ctx, cancel := commandContext()
			defer cancel()

			offer, err := env.client.ActOnOffer(ctx, args[0], action)
			if err != nil {
				return err
			}
			fmt.Printf("Offer %s is now %s.\n", offer.ID, offer.Status)
			return nil
		},
	}
}
