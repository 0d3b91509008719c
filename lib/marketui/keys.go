// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package marketui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the marketplace viewer.
type KeyMap struct {
	// Navigation (context-sensitive: list movement or detail scrolling
	// depending on current focus).
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Focus switching between the list and detail panes.
	FocusToggle key.Binding

	// Tab switching.
	TabBrowse  key.Binding
	TabOffers  key.Binding
	TabSell    key.Binding
	TabProfile key.Binding

	// Filter.
	FilterActivate key.Binding
	FilterClear    key.Binding

	// Marketplace actions.
	MakeOffer key.Binding // Open the offer modal for the selected item.
	Accept    key.Binding // Accept the selected pending offer (seller only).
	Decline   key.Binding // Decline the selected pending offer (seller only).
	Rate      key.Binding // Open the rating modal for the counterparty.
	Refresh   key.Binding // Re-fetch the active tab from the gateway.

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys and page up/down.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	FocusToggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "switch pane"),
	),
	TabBrowse: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "browse"),
	),
	TabOffers: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "offers"),
	),
	TabSell: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "sell"),
	),
	TabProfile: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "profile"),
	),
	FilterActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	FilterClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "clear filter"),
	),
	MakeOffer: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "make offer"),
	),
	Accept: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "accept"),
	),
	Decline: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "decline"),
	),
	Rate: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "rate"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
