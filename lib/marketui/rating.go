// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package marketui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/quad-market/quad/lib/market"
	"github.com/quad-market/quad/lib/tui"
)

// RatingModal rates a counterparty after a settled trade. Stars are
// picked with left/right; the comment is optional.
type RatingModal struct {
	// RateeID is the user being rated; ItemID ties the rating to the
	// traded item, or the general-rating placeholder when the rating
	// is not about a specific trade.
	RateeID string
	ItemID  string

	stars   int
	comment textinput.Model

	theme tui.Theme
}

// NewRatingModal creates the rating dialog. Stars start at 5; an
// empty itemID falls back to the general-rating placeholder.
func NewRatingModal(rateeID, itemID string, theme tui.Theme) RatingModal {
	if itemID == "" {
		itemID = market.RatingItemPlaceholder
	}

	comment := textinput.New()
	comment.Prompt = "> "
	comment.CharLimit = 300
	comment.Placeholder = "comment (optional)"
	comment.Focus()

	return RatingModal{
		RateeID: rateeID,
		ItemID:  itemID,
		stars:   5,
		comment: comment,
		theme:   theme,
	}
}

// Update processes a key message. When the user submits, the returned
// request is non-nil.
func (modal *RatingModal) Update(message tea.KeyMsg, raterID string) (*market.CreateRatingRequest, tea.Cmd) {
	switch message.Type {
	case tea.KeyLeft:
		if modal.stars > 1 {
			modal.stars--
		}
		return nil, nil

	case tea.KeyRight:
		if modal.stars < 5 {
			modal.stars++
		}
		return nil, nil

	case tea.KeyEnter:
		return &market.CreateRatingRequest{
			RaterID: raterID,
			RateeID: modal.RateeID,
			ItemID:  modal.ItemID,
			Stars:   modal.stars,
			Comment: strings.TrimSpace(modal.comment.Value()),
		}, nil
	}

	var cmd tea.Cmd
	modal.comment, cmd = modal.comment.Update(message)
	return nil, cmd
}

// Render produces the modal overlay lines and the anchor position.
func (modal RatingModal) Render(screenWidth, screenHeight int) ([]string, int, int) {
	innerWidth := min(max(screenWidth-8, 30), 50)

	background := lipgloss.NewStyle().Background(modal.theme.ModalBackground)
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.theme.HeaderForeground).
		Background(modal.theme.ModalBackground)
	starStyle := lipgloss.NewStyle().
		Foreground(modal.theme.StatusPending).
		Background(modal.theme.ModalBackground)
	footerStyle := lipgloss.NewStyle().
		Foreground(modal.theme.FaintText).
		Background(modal.theme.ModalBackground)

	stars := strings.Repeat("★", modal.stars) + strings.Repeat("☆", 5-modal.stars)

	var innerLines []string
	innerLines = append(innerLines, titleStyle.Render("Rate "+modal.RateeID))
	innerLines = append(innerLines, starStyle.Render(stars))
	innerLines = append(innerLines, modal.comment.View())
	innerLines = append(innerLines, footerStyle.Render("◂/▸ stars  Enter submit  Esc cancel"))

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
