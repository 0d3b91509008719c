// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/quad-market/quad/lib/market"
)

// Theme defines the color palette and visual properties for Quad's
// terminal UI. All colors use lipgloss ANSI 256-color codes for
// broad terminal compatibility.
//
// The fields cover both universal chrome (text, selection, borders)
// and semantic categories (offer status, price, condition) that recur
// across views — the browse list, the negotiation panel, and the
// profile page all color statuses and prices the same way.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Offer status colors.
	StatusPending  lipgloss.Color
	StatusAccepted lipgloss.Color
	StatusDeclined lipgloss.Color

	// Listing attributes.
	Price     lipgloss.Color
	Condition lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Error notices shown in the status bar.
	ErrorForeground lipgloss.Color

	// Search and filter match highlighting.
	SearchHighlightBackground lipgloss.Color

	// Modal dialogs.
	ModalForeground lipgloss.Color
	ModalBackground lipgloss.Color
}

// StatusColor returns the color for an offer status. Unknown values
// return FaintText.
func (theme Theme) StatusColor(status market.OfferStatus) lipgloss.Color {
	switch status {
	case market.OfferPending:
		return theme.StatusPending
	case market.OfferAccepted:
		return theme.StatusAccepted
	case market.OfferDeclined:
		return theme.StatusDeclined
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background (the common case for
// development environments and tmux sessions).
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	StatusPending:  lipgloss.Color("220"), // yellow/amber
	StatusAccepted: lipgloss.Color("114"), // green
	StatusDeclined: lipgloss.Color("196"), // red

	Price:     lipgloss.Color("114"), // green
	Condition: lipgloss.Color("75"),  // blue

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	ErrorForeground: lipgloss.Color("196"),

	SearchHighlightBackground: lipgloss.Color("58"), // dark amber

	ModalForeground: lipgloss.Color("252"),
	ModalBackground: lipgloss.Color("237"), // slightly lighter than terminal background
}
