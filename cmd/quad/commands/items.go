// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/quad-market/quad/cmd/quad/cli"
	"github.com/quad-market/quad/lib/market"
)

// itemsCommand returns the "items" command group.
func itemsCommand() *cli.Command {
	return &cli.Command{
		Name:    "items",
		Summary: "Browse, search, and create listings",
		Subcommands: []*cli.Command{
			itemsSearchCommand(),
			itemsNearbyCommand(),
			itemsCreateCommand(),
		},
	}
}

func itemsSearchCommand() *cli.Command {
	var campus string
	var category string
	var jsonOutput bool

	return &cli.Command{
		Name:    "search",
		Summary: "Search the catalog",
		Description: `Search listings by text query, campus, and category.

All filters are optional; with none, the full catalog is returned.
Valid categories: ` + categoryList() + `.`,
		Usage: "quad items search [query] [flags]",
		Examples: []cli.Example{
			{
				Description: "Text search scoped to a campus",
				Command:     `quad items search anatomy --campus "CMC Vellore"`,
			},
			{
				Description: "Everything in a category",
				Command:     "quad items search --category books",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("search", pflag.ContinueOnError)
			flagSet.StringVar(&campus, "campus", "", "restrict to a campus")
			flagSet.StringVar(&category, "category", "", "restrict to a category")
			flagSet.BoolVar(&jsonOutput, "json", false, "print raw JSON instead of a table")
			return flagSet
		},
		Run: func(args []string) error {
			filters := market.SearchFilters{
				Query:  strings.Join(args, " "),
				Campus: campus,
			}
			if category != "" {
				parsed := market.Category(category)
				if !parsed.Valid() {
					return fmt.Errorf("unknown category %q (valid: %s)", category, categoryList())
				}
				filters.Category = parsed
			}

			env, err := newEnvironment()
			if err != nil {
				return err
			}
			ctx, cancel := commandContext()
			defer cancel()

			items, err := env.client.SearchItems(ctx, filters)
			if err != nil {
				return err
			}
			return printItems(items, jsonOutput)
		},
	}
}

func itemsNearbyCommand() *cli.Command {
	var campus string
	var limit int
	var jsonOutput bool

	return &cli.Command{
		Name:    "nearby",
		Summary: "List items near you",
		Description: `List items near the caller, per the gateway's distance policy.

Without --campus, the campus from the saved session is used.`,
		Usage: "quad items nearby [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("nearby", pflag.ContinueOnError)
			flagSet.StringVar(&campus, "campus", "", "campus to search around (default: your session campus)")
			flagSet.IntVar(&limit, "limit", 20, "maximum results")
			flagSet.BoolVar(&jsonOutput, "json", false, "print raw JSON instead of a table")
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

			if campus == "" {
				if session, err := env.requireSession(); err == nil {
					campus = session.Campus
				}
			}

			ctx, cancel := commandContext()
			defer cancel()

			items, err := env.client.NearbyItems(ctx, market.NearbyOptions{
				Campus: campus,
				Limit:  limit,
			})
			if err != nil {
				return err
			}
			return printItems(items, jsonOutput)
		},
	}
}

func itemsCreateCommand() *cli.Command {
	var description string
	var category string
	var condition string
	var price float64
	var campus string

	return &cli.Command{
		Name:    "create",
		Summary: "List an item for sale",
		Usage:   "quad items create <title> --price <amount> [flags]",
		Examples: []cli.Example{
			{
				Description: "List a textbook",
				Command:     `quad items create "Gray's Anatomy 42nd ed" --price 800 --category books --condition Good`,
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("create", pflag.ContinueOnError)
			flagSet.StringVar(&description, "description", "", "listing body (markdown)")
			flagSet.StringVar(&category, "category", string(market.CategoryOther), "category: "+categoryList())
			flagSet.StringVar(&condition, "condition", string(market.ConditionGood), "condition: "+conditionList())
			flagSet.Float64Var(&price, "price", 0, "asking price (required)")
			flagSet.StringVar(&campus, "campus", "", "campus (default: your session campus)")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: quad items create <title> --price <amount>")
			}
			parsedCategory := market.Category(category)
			if !parsedCategory.Valid() {
				return fmt.Errorf("unknown category %q (valid: %s)", category, categoryList())
			}
			if price <= 0 {
				return fmt.Errorf("--price is required and must be positive")
			}

			env, err := newEnvironment()
			if err != nil {
				return err
			}
			session, err := env.requireSession()
			if err != nil {
				return err
			}
			if campus == "" {
				campus = session.Campus
			}

			ctx, cancel := commandContext()
			defer cancel()

			item, err := env.client.CreateItem(ctx, market.CreateItemRequest{
				Title:       args[0],
				Description: description,
				Category:    parsedCategory,
				Condition:   market.Condition(condition),
				Price:       price,
				Campus:      campus,
				SellerID:    session.UserID,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Listed %q (%s) at ₹%.0f\n", item.Title, item.ID, item.Price)
			return nil
		},
	}
}

func printItems(items []market.Item, jsonOutput bool) error {
	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(items)
	}

	if len(items) == 0 {
		fmt.Fprintln(os.Stderr, "No items found.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tCONDITION\tCATEGORY\tCAMPUS")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\t₹%.0f\t%s\t%s\t%s\n",
			item.ID, item.Title, item.Price, item.Condition, item.Category, item.Campus)
	}
	return tw.Flush()
}

func categoryList() string {
	var names []string
	for _, category := range market.Categories() {
		names = append(names, string(category))
	}
	return strings.Join(names, ", ")
}

func conditionList() string {
	var names []string
	for _, condition := range market.Conditions() {
		names = append(names, string(condition))
	}
	return strings.Join(names, ", ")
}
