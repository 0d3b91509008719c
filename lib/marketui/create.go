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

	"github.com/quad-market/quad/lib/market"
	"github.com/quad-market/quad/lib/tui"
)

// Sell form field order.
const (
	sellFieldTitle = iota
	sellFieldPrice
	sellFieldCategory
	sellFieldCondition
	sellFieldDescription
	sellFieldCount
)

// SellModel is the sell tab: a form that posts a new listing. Price
// parsing fails closed like the offer modal. Category and condition
// are pickers cycled with left/right rather than free text, so the
// gateway always receives a recognized value.
type SellModel struct {
	theme tui.Theme

	width  int
	height int

	title       textinput.Model
	price       textinput.Model
	description textinput.Model

	categoryIndex  int
	conditionIndex int

	focused int

	// validationError is shown under the form; cleared on the next
	// keystroke.
	validationError string

	// submitting is true while a create call is in flight, blocking
	// double submission.
	submitting bool

	campus string
}

// NewSellModel creates the sell form. The campus is stamped onto
// every listing from the session.
func NewSellModel(theme tui.Theme, campus string) SellModel {
	title := textinput.New()
	title.Prompt = "  title› "
	title.CharLimit = 120
	title.Focus()

	price := textinput.New()
	price.Prompt = "  price› ₹ "
	price.CharLimit = 12

	description := textinput.New()
	description.Prompt = "  notes› "
	description.CharLimit = 2000
	description.Placeholder = "condition details, pickup point, markdown ok"

	return SellModel{
		theme:       theme,
		title:       title,
		price:       price,
		description: description,
		campus:      campus,
	}
}

// SetSize updates the tab's drawable area.
func (sell *SellModel) SetSize(width, height int) {
	sell.width = width
	sell.height = height
}

// HandleCreated finishes a submission. On success the form resets for
// the next listing.
func (sell *SellModel) HandleCreated(message itemCreatedMsg) {
	sell.submitting = false
	if message.err != nil {
		return
	}
	sell.title.SetValue("")
	sell.price.SetValue("")
	sell.description.SetValue("")
	sell.categoryIndex = 0
	sell.conditionIndex = 0
	sell.setFocus(sellFieldTitle)
}

// Update processes a key message. When the user submits a valid
// listing, the returned request is non-nil.
func (sell *SellModel) Update(message tea.KeyMsg, sellerID string) (*market.CreateItemRequest, tea.Cmd) {
	sell.validationError = ""

	switch message.Type {
	case tea.KeyTab, tea.KeyDown:
		sell.setFocus((sell.focused + 1) % sellFieldCount)
		return nil, nil

	case tea.KeyShiftTab, tea.KeyUp:
		sell.setFocus((sell.focused + sellFieldCount - 1) % sellFieldCount)
		return nil, nil

	case tea.KeyLeft, tea.KeyRight:
		delta := 1
		if message.Type == tea.KeyLeft {
			delta = -1
		}
		switch sell.focused {
		case sellFieldCategory:
			count := len(market.Categories())
			sell.categoryIndex = (sell.categoryIndex + delta + count) % count
			return nil, nil
		case sellFieldCondition:
			count := len(market.Conditions())
			sell.conditionIndex = (sell.conditionIndex + delta + count) % count
			return nil, nil
		}

	case tea.KeyEnter:
		if sell.submitting {
			return nil, nil
		}
		request, err := sell.buildRequest(sellerID)
		if err != nil {
			sell.validationError = err.Error()
			return nil, nil
		}
		sell.submitting = true
		return request, nil
	}

	var cmd tea.Cmd
	switch sell.focused {
	case sellFieldTitle:
		sell.title, cmd = sell.title.Update(message)
	case sellFieldPrice:
		sell.price, cmd = sell.price.Update(message)
	case sellFieldDescription:
		sell.description, cmd = sell.description.Update(message)
	}
	return nil, cmd
}

func (sell *SellModel) setFocus(field int) {
	sell.focused = field
	sell.title.Blur()
	sell.price.Blur()
	sell.description.Blur()
	switch field {
	case sellFieldTitle:
		sell.title.Focus()
	case sellFieldPrice:
		sell.price.Focus()
	case sellFieldDescription:
		sell.description.Focus()
	}
}

func (sell *SellModel) buildRequest(sellerID string) (*market.CreateItemRequest, error) {
	title := strings.TrimSpace(sell.title.Value())
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	rawPrice := strings.TrimSpace(sell.price.Value())
	if rawPrice == "" {
		return nil, fmt.Errorf("price is required")
	}
	price, err := strconv.ParseFloat(rawPrice, 64)
	if err != nil {
		return nil, fmt.Errorf("price %q is not a number", rawPrice)
	}

	return &market.CreateItemRequest{
		Title:       title,
		Description: strings.TrimSpace(sell.description.Value()),
		Category:    market.Categories()[sell.categoryIndex],
		Condition:   market.Conditions()[sell.conditionIndex],
		Price:       price,
		Campus:      sell.campus,
		SellerID:    sellerID,
	}, nil
}

// View renders the sell form.
func (sell *SellModel) View() string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(sell.theme.HeaderForeground)
	labelStyle := lipgloss.NewStyle().Foreground(sell.theme.FaintText)
	pickerStyle := lipgloss.NewStyle().Foreground(sell.theme.NormalText)
	focusedPickerStyle := lipgloss.NewStyle().
		Foreground(sell.theme.SelectedForeground).
		Background(sell.theme.SelectedBackground)
	errorStyle := lipgloss.NewStyle().Foreground(sell.theme.ErrorForeground)

	category := market.Categories()[sell.categoryIndex].Label()
	condition := string(market.Conditions()[sell.conditionIndex])

	categoryLine := pickerStyle.Render("  category› ◂ " + category + " ▸")
	if sell.focused == sellFieldCategory {
		categoryLine = focusedPickerStyle.Render("  category› ◂ " + category + " ▸")
	}
	conditionLine := pickerStyle.Render(" condition› ◂ " + condition + " ▸")
	if sell.focused == sellFieldCondition {
		conditionLine = focusedPickerStyle.Render(" condition› ◂ " + condition + " ▸")
	}

	var lines []string
	lines = append(lines, " "+headerStyle.Render("New listing"))
	if sell.campus != "" {
		lines = append(lines, " "+labelStyle.Render("campus: "+sell.campus))
	}
	lines = append(lines, "")
	lines = append(lines, " "+sell.title.View())
	lines = append(lines, " "+sell.price.View())
	lines = append(lines, " "+categoryLine)
	lines = append(lines, " "+conditionLine)
	lines = append(lines, " "+sell.description.View())
	lines = append(lines, "")

	switch {
	case sell.validationError != "":
		lines = append(lines, " "+errorStyle.Render(sell.validationError))
	case sell.submitting:
		lines = append(lines, " "+labelStyle.Render("posting…"))
	default:
		lines = append(lines, " "+labelStyle.Render("Enter post  Tab next field  ◂/▸ change pickers"))
	}

	return lipgloss.NewStyle().Width(sell.width).MaxWidth(sell.width).
		Render(strings.Join(lines, "\n"))
}
