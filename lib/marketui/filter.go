// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package marketui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/junegunn/fzf/src/util"

	"github.com/quad-market/quad/lib/market"
	"github.com/quad-market/quad/lib/tui"
)

// FilterModel refines the loaded browse results client-side with
// fzf-style fuzzy matching against title, category, condition, and
// campus. The server-side search (query plus campus/category filters)
// chooses the base set; the filter narrows it as the user types
// without round-tripping to the gateway.
type FilterModel struct {
	// Input is the current filter query text.
	Input string

	// Active is true when the filter input has keyboard focus.
	Active bool
}

// ItemMatch pairs an item with its fuzzy match score and the matched
// rune positions in the title for highlighting.
type ItemMatch struct {
	Item           market.Item
	Score          int
	TitlePositions []int
}

// Apply scores every item against the filter text and returns the
// matching items sorted by descending score. An empty filter returns
// all items in their original order with zero scores.
func (filter *FilterModel) Apply(items []market.Item) []ItemMatch {
	if filter.Input == "" {
		matches := make([]ItemMatch, len(items))
		for index, item := range items {
			matches[index] = ItemMatch{Item: item}
		}
		return matches
	}

	pattern := []rune(filter.Input)
	slab := util.MakeSlab(100*1024, 2048)

	var matches []ItemMatch
	for _, item := range items {
		titleResult := tui.FuzzyMatch(item.Title, pattern, slab)
		best := ItemMatch{
			Item:           item,
			Score:          titleResult.Score,
			TitlePositions: titleResult.Positions,
		}

		// Secondary fields contribute score but no highlight
		// positions: the list only shows the title.
		for _, field := range []string{
			string(item.Category),
			string(item.Condition),
			item.Campus,
		} {
			if field == "" {
				continue
			}
			result := tui.FuzzyMatch(field, pattern, slab)
			if result.Score > best.Score {
				best.Score = result.Score
				best.TitlePositions = nil
			}
		}

		if best.Score > 0 {
			matches = append(matches, best)
		}
	}

	sort.SliceStable(matches, func(first, second int) bool {
		return matches[first].Score > matches[second].Score
	})
	return matches
}

// HandleRune appends a typed character to the filter input.
func (filter *FilterModel) HandleRune(character rune) {
	filter.Input += string(character)
}

// HandleBackspace removes the last character from the filter input.
// Returns true if the input changed.
func (filter *FilterModel) HandleBackspace() bool {
	if len(filter.Input) == 0 {
		return false
	}
	runes := []rune(filter.Input)
	filter.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the filter input and deactivates it.
func (filter *FilterModel) Clear() {
	filter.Input = ""
	filter.Active = false
}

// View renders the filter bar. When active, shows the input with a
// cursor. When inactive with text, shows the filter text. When
// inactive with no text, returns empty string (hidden).
func (filter *FilterModel) View(theme tui.Theme, width int) string {
	if !filter.Active && filter.Input == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Foreground(theme.NormalText).
		Width(width)

	if filter.Active {
		cursor := lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render("▎")
		return style.Render(" / " + filter.Input + cursor)
	}

	dimStyle := lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Width(width)
	return dimStyle.Render(" filter: " + filter.Input)
}

// highlightTitle renders a title with matched rune positions shown on
// the search highlight background.
func highlightTitle(title string, positions []int, baseStyle, highlightStyle lipgloss.Style) string {
	if len(positions) == 0 {
		return baseStyle.Render(title)
	}

	matched := make(map[int]bool, len(positions))
	for _, position := range positions {
		matched[position] = true
	}

	var result strings.Builder
	for index, character := range []rune(title) {
		if matched[index] {
			result.WriteString(highlightStyle.Render(string(character)))
		} else {
			result.WriteString(baseStyle.Render(string(character)))
		}
	}
	return result.String()
}
