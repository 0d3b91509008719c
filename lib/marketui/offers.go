// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package marketui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/quad-market/quad/lib/market"
	"github.com/quad-market/quad/lib/tui"
)

// OffersModel is the offers tab: every offer the current user is a
// party to, incoming and outgoing, with accept/decline for pending
// incoming offers.
//
// Mutations are pessimistic. An accept or decline keeps the row in
// its last confirmed state while the call is in flight; the settled
// offer from the gateway response replaces the row on success, and a
// failure leaves the rows untouched. The in-flight offer ID is
// tracked so a second action on the same row is ignored until the
// gateway answers.
type OffersModel struct {
	theme tui.Theme
	keys  KeyMap

	width  int
	height int

	userID string

	offers       []market.Offer
	cursor       int
	scrollOffset int

	loading bool

	// actingOfferID is the offer with an accept/decline in flight;
	// empty when idle.
	actingOfferID string
}

// NewOffersModel creates the offers tab for the given user.
func NewOffersModel(theme tui.Theme, keys KeyMap, userID string) OffersModel {
	return OffersModel{
		theme:   theme,
		keys:    keys,
		userID:  userID,
		loading: true,
	}
}

// SetSize updates the tab's drawable area.
func (offers *OffersModel) SetSize(width, height int) {
	offers.width = width
	offers.height = height
	offers.ensureCursorVisible()
}

// Selected returns the offer under the cursor, or nil when the list
// is empty.
func (offers *OffersModel) Selected() *market.Offer {
	if offers.cursor < 0 || offers.cursor >= len(offers.offers) {
		return nil
	}
	offer := offers.offers[offers.cursor]
	return &offer
}

// Incoming reports whether the offer was made on one of the current
// user's listings.
func (offers *OffersModel) Incoming(offer market.Offer) bool {
	return offer.SellerID == offers.userID
}

// CanAct reports whether accept/decline applies to the offer: it must
// be pending, incoming, and not already awaiting a gateway answer.
func (offers *OffersModel) CanAct(offer market.Offer) bool {
	return offer.Status == market.OfferPending &&
		offers.Incoming(offer) &&
		offers.actingOfferID == ""
}

// MarkActing records an in-flight accept/decline for the offer.
func (offers *OffersModel) MarkActing(offerID string) {
	offers.actingOfferID = offerID
}

// Acting reports whether an accept/decline is currently in flight.
func (offers *OffersModel) Acting() bool {
	return offers.actingOfferID != ""
}

// MarkLoading flags an in-flight reload. The stale rows keep
// rendering until the response lands.
func (offers *OffersModel) MarkLoading() {
	offers.loading = true
}

// HandleOffersLoaded installs a fresh offer set.
func (offers *OffersModel) HandleOffersLoaded(message offersLoadedMsg) {
	offers.loading = false
	offers.offers = message.offers
	if offers.cursor >= len(offers.offers) {
		offers.cursor = max(len(offers.offers)-1, 0)
	}
	offers.ensureCursorVisible()
}

// HandleActionResult finishes an accept/decline. On success the
// settled offer replaces its row; on failure the rows are left as
// they were. Either way the in-flight marker clears.
func (offers *OffersModel) HandleActionResult(message offerActionMsg) {
	offers.actingOfferID = ""
	if message.err != nil || message.offer == nil {
		return
	}
	for index, offer := range offers.offers {
		if offer.ID == message.offer.ID {
			offers.offers[index].Status = message.offer.Status
			return
		}
	}
}

// Update handles navigation keys for the offers list.
func (offers *OffersModel) Update(message tea.KeyMsg) {
	switch {
	case key.Matches(message, offers.keys.Up):
		offers.moveCursor(-1)
	case key.Matches(message, offers.keys.Down):
		offers.moveCursor(1)
	case key.Matches(message, offers.keys.PageUp):
		offers.moveCursor(-offers.visibleRows())
	case key.Matches(message, offers.keys.PageDown):
		offers.moveCursor(offers.visibleRows())
	case key.Matches(message, offers.keys.Home):
		offers.cursor = 0
		offers.ensureCursorVisible()
	case key.Matches(message, offers.keys.End):
		offers.cursor = max(len(offers.offers)-1, 0)
		offers.ensureCursorVisible()
	}
}

func (offers *OffersModel) moveCursor(delta int) {
	offers.cursor = max(min(offers.cursor+delta, len(offers.offers)-1), 0)
	offers.ensureCursorVisible()
}

func (offers *OffersModel) visibleRows() int {
	return max(offers.height-1, 1)
}

func (offers *OffersModel) ensureCursorVisible() {
	visible := offers.visibleRows()
	if offers.cursor < offers.scrollOffset {
		offers.scrollOffset = offers.cursor
	}
	if offers.cursor >= offers.scrollOffset+visible {
		offers.scrollOffset = offers.cursor - visible + 1
	}
	if offers.scrollOffset < 0 {
		offers.scrollOffset = 0
	}
}

// View renders the offer list.
func (offers *OffersModel) View() string {
	if offers.width <= 0 || offers.height <= 0 {
		return ""
	}

	var lines []string
	headerStyle := lipgloss.NewStyle().Foreground(offers.theme.FaintText)

	pendingCount := 0
	for _, offer := range offers.offers {
		if offer.Status == market.OfferPending {
			pendingCount++
		}
	}
	header := fmt.Sprintf(" %d offers · %d pending", len(offers.offers), pendingCount)
	if offers.loading {
		header += " · refreshing"
	}
	lines = append(lines, headerStyle.Render(header))

	if len(offers.offers) == 0 && !offers.loading {
		emptyStyle := lipgloss.NewStyle().Foreground(offers.theme.FaintText)
		lines = append(lines, emptyStyle.Render(" No offers yet"))
		return lipgloss.NewStyle().Width(offers.width).Render(strings.Join(lines, "\n"))
	}

	visible := offers.visibleRows()
	scrollbar := tui.RenderScrollbar(offers.theme, visible,
		len(offers.offers), visible, offers.scrollOffset, true)
	scrollbarLines := strings.Split(scrollbar, "\n")

	rowWidth := offers.width - 2
	for rowIndex := 0; rowIndex < visible; rowIndex++ {
		offerIndex := offers.scrollOffset + rowIndex
		var row string
		if offerIndex < len(offers.offers) {
			row = offers.renderOfferRow(offers.offers[offerIndex], offerIndex == offers.cursor, rowWidth)
		} else {
			row = strings.Repeat(" ", rowWidth)
		}
		if rowIndex < len(scrollbarLines) {
			row += " " + scrollbarLines[rowIndex]
		}
		lines = append(lines, row)
	}

	return lipgloss.NewStyle().Width(offers.width).MaxWidth(offers.width).
		Render(strings.Join(lines, "\n"))
}

func (offers *OffersModel) renderOfferRow(offer market.Offer, selected bool, width int) string {
	normalStyle := lipgloss.NewStyle().Foreground(offers.theme.NormalText)
	priceStyle := lipgloss.NewStyle().Foreground(offers.theme.Price)
	statusStyle := lipgloss.NewStyle().Foreground(offers.theme.StatusColor(offer.Status))

	if selected {
		background := offers.theme.SelectedBackground
		normalStyle = normalStyle.Background(background).Foreground(offers.theme.SelectedForeground)
		priceStyle = priceStyle.Background(background)
		statusStyle = statusStyle.Background(background)
	}

	var direction string
	if offers.Incoming(offer) {
		direction = "← from " + offer.BuyerID
	} else {
		direction = "→ to " + offer.SellerID
	}

	status := string(offer.Status)
	if offer.ID == offers.actingOfferID {
		status = "settling"
	}

	price := fmt.Sprintf("₹%.0f", offer.OfferedPrice)
	left := fmt.Sprintf(" %s  %s", offer.ItemID, direction)
	if offer.Message != "" {
		left += "  “" + offer.Message + "”"
	}

	reserved := ansi.StringWidth(price) + len(status) + 6
	leftWidth := max(width-reserved, 8)
	if ansi.StringWidth(left) > leftWidth {
		left = ansi.Truncate(left, leftWidth-1, "…")
	}
	padding := strings.Repeat(" ", max(leftWidth-ansi.StringWidth(left), 0))

	row := normalStyle.Render(left+padding) +
		priceStyle.Render(price) +
		normalStyle.Render("  ") +
		statusStyle.Render(status)

	rowWidth := ansi.StringWidth(row)
	if rowWidth < width {
		row += normalStyle.Render(strings.Repeat(" ", width-rowWidth))
	}
	return row
}
