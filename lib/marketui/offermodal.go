// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package marketui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/quad-market/quad/lib/market"
	"github.com/quad-market/quad/lib/tui"
)

// OfferModal is the make-an-offer dialog, rendered as a centered
// overlay on top of the browse view. Price parsing fails closed: a
// value that does not parse as a number blocks submission with an
// inline error instead of sending a zeroed price.
type OfferModal struct {
	Item market.Item

	price   textinput.Model
	message textinput.Model
	focused int // 0 = price, 1 = message.

	// validationError is shown inline when the price input does not
	// parse or the gateway rejects the offer; cleared on the next
	// keystroke.
	validationError string

	// submitting is true while the create call is in flight. The form
	// freezes until the gateway answers; only Esc still works.
	submitting bool

	theme tui.Theme
}

// NewOfferModal creates the offer dialog for an item. The price field
// starts focused and pre-filled with the asking price.
func NewOfferModal(item market.Item, theme tui.Theme) OfferModal {
	price := textinput.New()
	price.Prompt = "₹ "
	price.CharLimit = 12
	price.SetValue(strconv.FormatFloat(item.Price, 'f', -1, 64))
	price.Focus()

	message := textinput.New()
	message.Prompt = "> "
	message.CharLimit = 200
	message.Placeholder = "message to the seller (optional)"

	return OfferModal{
		Item:    item,
		price:   price,
		message: message,
		theme:   theme,
	}
}

// Update processes a key message. When the user submits a valid
// offer, the returned request is non-nil.
func (modal *OfferModal) Update(message tea.KeyMsg, buyerID string) (*market.CreateOfferRequest, tea.Cmd) {
	if modal.submitting {
		return nil, nil
	}
	modal.validationError = ""

	switch message.Type {
	case tea.KeyTab, tea.KeyDown, tea.KeyUp:
		modal.toggleFocus()
		return nil, nil

	case tea.KeyEnter:
		price, err := modal.parsePrice()
		if err != nil {
			modal.validationError = err.Error()
			return nil, nil
		}
		return &market.CreateOfferRequest{
			ItemID:       modal.Item.ID,
			BuyerID:      buyerID,
			OfferedPrice: price,
			Message:      strings.TrimSpace(modal.message.Value()),
		}, nil
	}

	var cmd tea.Cmd
	if modal.focused == 0 {
		modal.price, cmd = modal.price.Update(message)
	} else {
		modal.message, cmd = modal.message.Update(message)
	}
	return nil, cmd
}

// MarkSubmitting freezes the form while the create call is in flight.
func (modal *OfferModal) MarkSubmitting() {
	modal.submitting = true
	modal.validationError = ""
}

// HandleRejected re-opens the form for editing after the gateway
// rejects the offer. The typed price and message are preserved.
func (modal *OfferModal) HandleRejected(err error) {
	modal.submitting = false
	modal.validationError = err.Error()
}

func (modal *OfferModal) toggleFocus() {
	if modal.focused == 0 {
		modal.focused = 1
		modal.price.Blur()
		modal.message.Focus()
	} else {
		modal.focused = 0
		modal.message.Blur()
		modal.price.Focus()
	}
}

// parsePrice validates the price input. Negative and zero amounts are
// allowed: free handoffs and symbolic offers are the backend's policy
// call, not the client's.
func (modal *OfferModal) parsePrice() (float64, error) {
	raw := strings.TrimSpace(modal.price.Value())
	if raw == "" {
		return 0, fmt.Errorf("price is required")
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("price %q is not a number", raw)
	}
	return price, nil
}

// Render produces the modal overlay lines and the anchor position for
// splicing onto the view.
func (modal OfferModal) Render(screenWidth, screenHeight int) ([]string, int, int) {
	innerWidth := min(max(screenWidth-8, 30), 60)

	background := lipgloss.NewStyle().Background(modal.theme.ModalBackground)
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.theme.HeaderForeground).
		Background(modal.theme.ModalBackground)
	labelStyle := lipgloss.NewStyle().
		Foreground(modal.theme.FaintText).
		Background(modal.theme.ModalBackground)
	errorStyle := lipgloss.NewStyle().
		Foreground(modal.theme.ErrorForeground).
		Background(modal.theme.ModalBackground)
	footerStyle := labelStyle

	title := "Offer on " + modal.Item.Title
	if ansi.StringWidth(title) > innerWidth {
		title = ansi.Truncate(title, innerWidth-1, "…")
	}

	var innerLines []string
	innerLines = append(innerLines, titleStyle.Render(title))
	innerLines = append(innerLines, labelStyle.Render(
		fmt.Sprintf("asking ₹%.0f · %s", modal.Item.Price, modal.Item.Condition)))
	innerLines = append(innerLines, "")
	innerLines = append(innerLines, modal.price.View())
	innerLines = append(innerLines, modal.message.View())
	if modal.validationError != "" {
		innerLines = append(innerLines, errorStyle.Render(modal.validationError))
	} else {
		innerLines = append(innerLines, "")
	}
	footer := "Enter submit  Tab next field  Esc cancel"
	if modal.submitting {
		footer = "sending offer…"
	}
	innerLines = append(innerLines, footerStyle.Render(footer))

	for index, line := range innerLines {
		innerLines[index] = tui.PadOverlayLine(line, innerWidth, background)
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.theme.BorderColor).
		Background(modal.theme.ModalBackground)
	rendered := borderStyle.Render(strings.Join(innerLines, "\n"))

	resultLines := strings.Split(rendered, "\n")
	renderedWidth := 0
	if len(resultLines) > 0 {
		renderedWidth = ansi.StringWidth(resultLines[0])
	}

	anchorX := max((screenWidth-renderedWidth)/2, 0)
	anchorY := max((screenHeight-len(resultLines))/2, 0)
	return resultLines, anchorX, anchorY
}
