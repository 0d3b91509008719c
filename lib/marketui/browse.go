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

// BrowseModel is the browse tab: a two-pane item list with a detail
// view. The server chooses the base result set (query, campus, and
// category filters); the fuzzy filter narrows it client-side as the
// user types, and Enter promotes the typed text to the server-side
// query for a full catalog search.
type BrowseModel struct {
	theme tui.Theme
	keys  KeyMap

	width  int
	height int

	// Server-side filters. Changing any of them triggers a reload.
	campus        string
	categoryIndex int    // Index into categoryCycle; 0 means all categories.
	query         string // Free-text search submitted from the filter bar.

	// Result set and filtered view. items is the last confirmed
	// gateway response; matches is what the list renders.
	items   []market.Item
	matches []ItemMatch
	filter  FilterModel

	cursor       int
	scrollOffset int
	selectedID   string // Stable focus: track selection by item ID.

	loading bool

	// Detail pane state.
	focusDetail  bool
	detailScroll int
	syntaxTheme  string
}

// categoryCycle is the category filter rotation: all, then each
// category in display order.
var categoryCycle = append([]market.Category{""}, market.Categories()...)

// NewBrowseModel creates the browse tab. The campus preselects the
// server-side campus filter; empty means all campuses.
func NewBrowseModel(theme tui.Theme, keys KeyMap, campus, syntaxTheme string) BrowseModel {
	return BrowseModel{
		theme:       theme,
		keys:        keys,
		campus:      campus,
		loading:     true,
		syntaxTheme: syntaxTheme,
	}
}

// SetSize updates the tab's drawable area.
func (browse *BrowseModel) SetSize(width, height int) {
	browse.width = width
	browse.height = height
	browse.ensureCursorVisible()
}

// SearchFilters returns the server-side filters for the current
// state. The filter bar text only reaches the query once submitted
// with Enter; until then it narrows client-side.
func (browse *BrowseModel) SearchFilters() market.SearchFilters {
	return market.SearchFilters{
		Query:    browse.query,
		Campus:   browse.campus,
		Category: categoryCycle[browse.categoryIndex],
	}
}

// Selected returns the item under the cursor, or nil when the list is
// empty.
func (browse *BrowseModel) Selected() *market.Item {
	if browse.cursor < 0 || browse.cursor >= len(browse.matches) {
		return nil
	}
	item := browse.matches[browse.cursor].Item
	return &item
}

// HandleItemsLoaded installs a fresh result set. Stale responses for
// filters the user has already moved past are dropped.
func (browse *BrowseModel) HandleItemsLoaded(message itemsLoadedMsg) {
	if message.filters != browse.SearchFilters() {
		return
	}
	browse.loading = false
	browse.items = message.items
	browse.applyFilter()
}

// CycleCategory advances the category filter. The caller reloads.
func (browse *BrowseModel) CycleCategory() {
	browse.categoryIndex = (browse.categoryIndex + 1) % len(categoryCycle)
	browse.loading = true
	browse.cursor = 0
	browse.scrollOffset = 0
	browse.detailScroll = 0
}

// MarkLoading flags an in-flight reload. The stale list keeps
// rendering until the response lands.
func (browse *BrowseModel) MarkLoading() {
	browse.loading = true
}

// applyFilter recomputes the filtered view and restores the cursor to
// the previously selected item when it survives the filter.
func (browse *BrowseModel) applyFilter() {
	browse.matches = browse.filter.Apply(browse.items)

	if browse.selectedID != "" {
		for index, match := range browse.matches {
			if match.Item.ID == browse.selectedID {
				browse.cursor = index
				browse.ensureCursorVisible()
				return
			}
		}
	}
	if browse.cursor >= len(browse.matches) {
		browse.cursor = max(len(browse.matches)-1, 0)
	}
	browse.syncSelection()
	browse.ensureCursorVisible()
}

func (browse *BrowseModel) syncSelection() {
	if browse.cursor < len(browse.matches) {
		if browse.matches[browse.cursor].Item.ID != browse.selectedID {
			browse.detailScroll = 0
		}
		browse.selectedID = browse.matches[browse.cursor].Item.ID
	} else {
		browse.selectedID = ""
	}
}

// Update handles a key message. It returns true when the server-side
// filters changed and the caller should reload.
func (browse *BrowseModel) Update(message tea.KeyMsg) (reload bool) {
	if browse.filter.Active {
		return browse.handleFilterKeys(message)
	}

	switch {
	case key.Matches(message, browse.keys.FocusToggle):
		browse.focusDetail = !browse.focusDetail

	case key.Matches(message, browse.keys.FilterActivate):
		browse.filter.Active = true
		browse.cursor = 0
		browse.scrollOffset = 0

	case key.Matches(message, browse.keys.FilterClear):
		if browse.filter.Input != "" {
			browse.filter.Clear()
			browse.applyFilter()
		}
		return browse.clearQuery()

	case message.Type == tea.KeyRunes && string(message.Runes) == "c":
		browse.CycleCategory()
		return true

	case key.Matches(message, browse.keys.Up):
		browse.moveCursor(-1)

	case key.Matches(message, browse.keys.Down):
		browse.moveCursor(1)

	case key.Matches(message, browse.keys.PageUp):
		browse.moveCursor(-browse.visibleRows())

	case key.Matches(message, browse.keys.PageDown):
		browse.moveCursor(browse.visibleRows())

	case key.Matches(message, browse.keys.Home):
		browse.cursor = 0
		browse.syncSelection()
		browse.ensureCursorVisible()

	case key.Matches(message, browse.keys.End):
		browse.cursor = max(len(browse.matches)-1, 0)
		browse.syncSelection()
		browse.ensureCursorVisible()
	}
	return false
}

func (browse *BrowseModel) handleFilterKeys(message tea.KeyMsg) (reload bool) {
	switch message.Type {
	case tea.KeyEsc:
		browse.filter.Clear()
		browse.applyFilter()
		return browse.clearQuery()
	case tea.KeyEnter:
		browse.filter.Active = false
		return browse.submitQuery()
	case tea.KeyBackspace:
		if browse.filter.HandleBackspace() {
			browse.applyFilter()
		}
	case tea.KeyRunes, tea.KeySpace:
		for _, character := range message.Runes {
			browse.filter.HandleRune(character)
		}
		browse.applyFilter()
	}
	return false
}

// submitQuery promotes the filter bar text to the server-side search
// query. The text stays in the filter for client-side highlighting of
// the returned page; the caller reloads when the query changed.
func (browse *BrowseModel) submitQuery() bool {
	query := strings.TrimSpace(browse.filter.Input)
	if query == browse.query {
		return false
	}
	browse.query = query
	browse.loading = true
	browse.cursor = 0
	browse.scrollOffset = 0
	browse.detailScroll = 0
	return true
}

// clearQuery drops the server-side search query, returning to the
// unfiltered catalog. The caller reloads when it was set.
func (browse *BrowseModel) clearQuery() bool {
	if browse.query == "" {
		return false
	}
	browse.query = ""
	browse.loading = true
	return true
}

func (browse *BrowseModel) moveCursor(delta int) {
	if browse.focusDetail {
		browse.detailScroll = max(browse.detailScroll+delta, 0)
		return
	}
	browse.cursor = max(min(browse.cursor+delta, len(browse.matches)-1), 0)
	browse.syncSelection()
	browse.ensureCursorVisible()
}

// visibleRows is the number of list rows that fit in the pane.
func (browse *BrowseModel) visibleRows() int {
	return max(browse.height-1, 1) // One line of pane header.
}

func (browse *BrowseModel) ensureCursorVisible() {
	visible := browse.visibleRows()
	if browse.cursor < browse.scrollOffset {
		browse.scrollOffset = browse.cursor
	}
	if browse.cursor >= browse.scrollOffset+visible {
		browse.scrollOffset = browse.cursor - visible + 1
	}
	if browse.scrollOffset < 0 {
		browse.scrollOffset = 0
	}
}

// listWidth is the width of the left pane. The remainder minus the
// divider goes to the detail pane.
func (browse *BrowseModel) listWidth() int {
	return browse.width / 2
}

// View renders the two-pane browse layout.
func (browse *BrowseModel) View() string {
	if browse.width <= 0 || browse.height <= 0 {
		return ""
	}

	listView := browse.renderListPane()
	divider := browse.renderDivider()
	detailView := browse.renderDetailPane()
	return lipgloss.JoinHorizontal(lipgloss.Top, listView, divider, detailView)
}

func (browse *BrowseModel) renderListPane() string {
	width := browse.listWidth()
	var lines []string

	headerStyle := lipgloss.NewStyle().Foreground(browse.theme.FaintText)
	category := categoryCycle[browse.categoryIndex]
	header := fmt.Sprintf(" %d items", len(browse.matches))
	if category != "" {
		header += " · " + category.Label()
	}
	if browse.campus != "" {
		header += " · " + browse.campus
	}
	if browse.query != "" {
		header += " · \"" + browse.query + "\""
	}
	if browse.loading {
		header += " · refreshing"
	}
	lines = append(lines, headerStyle.Render(ansi.Truncate(header, width-1, "…")))

	if len(browse.matches) == 0 && !browse.loading {
		emptyStyle := lipgloss.NewStyle().Foreground(browse.theme.FaintText)
		lines = append(lines, emptyStyle.Render(" No items found"))
	}

	visible := browse.visibleRows()
	scrollbar := tui.RenderScrollbar(browse.theme, visible,
		len(browse.matches), visible, browse.scrollOffset, !browse.focusDetail)
	scrollbarLines := strings.Split(scrollbar, "\n")

	rowWidth := width - 2 // Scrollbar column plus a space.
	for rowIndex := 0; rowIndex < visible; rowIndex++ {
		itemIndex := browse.scrollOffset + rowIndex
		var row string
		if itemIndex < len(browse.matches) {
			row = browse.renderItemRow(browse.matches[itemIndex], itemIndex == browse.cursor, rowWidth)
		} else if len(browse.matches) == 0 && !browse.loading && rowIndex == 0 {
			continue // The empty-state line already occupies this row.
		} else {
			row = strings.Repeat(" ", rowWidth)
		}
		if rowIndex < len(scrollbarLines) {
			row += " " + scrollbarLines[rowIndex]
		}
		lines = append(lines, row)
	}

	paneStyle := lipgloss.NewStyle().Width(width).MaxWidth(width)
	return paneStyle.Render(strings.Join(lines, "\n"))
}

func (browse *BrowseModel) renderItemRow(match ItemMatch, selected bool, width int) string {
	titleStyle := lipgloss.NewStyle().Foreground(browse.theme.NormalText)
	priceStyle := lipgloss.NewStyle().Foreground(browse.theme.Price)
	metaStyle := lipgloss.NewStyle().Foreground(browse.theme.FaintText)
	highlightStyle := titleStyle.Background(browse.theme.SearchHighlightBackground)

	if selected {
		titleStyle = titleStyle.
			Background(browse.theme.SelectedBackground).
			Foreground(browse.theme.SelectedForeground)
		priceStyle = priceStyle.Background(browse.theme.SelectedBackground)
		metaStyle = metaStyle.Background(browse.theme.SelectedBackground)
		highlightStyle = highlightStyle.Background(browse.theme.SearchHighlightBackground)
	}

	price := fmt.Sprintf("₹%.0f", match.Item.Price)
	meta := string(match.Item.Condition)

	// Layout: title fills, then condition and right-aligned price.
	reserved := ansi.StringWidth(price) + ansi.StringWidth(meta) + 4
	titleWidth := max(width-reserved, 8)

	title := match.Item.Title
	positions := match.TitlePositions
	if ansi.StringWidth(title) > titleWidth {
		title = ansi.Truncate(title, titleWidth-1, "…")
		positions = clampPositions(positions, len([]rune(title)))
	}
	rendered := highlightTitle(title, positions, titleStyle, highlightStyle)

	padding := titleWidth - ansi.StringWidth(title)
	filler := titleStyle.Render(strings.Repeat(" ", max(padding, 0)+2))

	row := " " + rendered + filler + metaStyle.Render(meta) + "  " + priceStyle.Render(price)
	rowWidth := ansi.StringWidth(row)
	if rowWidth < width {
		pad := titleStyle.Render(strings.Repeat(" ", width-rowWidth))
		row += pad
	}
	return row
}

func clampPositions(positions []int, limit int) []int {
	var result []int
	for _, position := range positions {
		if position < limit {
			result = append(result, position)
		}
	}
	return result
}

func (browse *BrowseModel) renderDivider() string {
	style := lipgloss.NewStyle().Foreground(browse.theme.BorderColor)
	lines := make([]string, browse.height)
	for index := range lines {
		lines[index] = style.Render("│")
	}
	return strings.Join(lines, "\n")
}

func (browse *BrowseModel) renderDetailPane() string {
	width := browse.width - browse.listWidth() - 1
	if width < 10 {
		width = 10
	}

	item := browse.Selected()
	if item == nil {
		empty := lipgloss.NewStyle().Foreground(browse.theme.FaintText)
		return lipgloss.NewStyle().Width(width).Render(empty.Render(" Select an item"))
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(browse.theme.HeaderForeground)
	priceStyle := lipgloss.NewStyle().Foreground(browse.theme.Price).Bold(true)
	metaStyle := lipgloss.NewStyle().Foreground(browse.theme.FaintText)
	conditionStyle := lipgloss.NewStyle().Foreground(browse.theme.Condition)

	var lines []string
	lines = append(lines, " "+headerStyle.Render(ansi.Truncate(item.Title, width-2, "…")))
	lines = append(lines, " "+priceStyle.Render(fmt.Sprintf("₹%.0f", item.Price))+
		metaStyle.Render("  ·  ")+conditionStyle.Render(string(item.Condition))+
		metaStyle.Render("  ·  "+item.Category.Label()))
	meta := "seller " + item.SellerID
	if item.Campus != "" {
		meta += "  ·  " + item.Campus
	}
	lines = append(lines, " "+metaStyle.Render(ansi.Truncate(meta, width-2, "…")))
	lines = append(lines, "")

	if item.Description != "" {
		description := tui.RenderMarkdown(item.Description, browse.theme, width-2, browse.syntaxTheme)
		for _, line := range strings.Split(description, "\n") {
			lines = append(lines, " "+line)
		}
	}

	// Scroll the body under a fixed header of 4 lines.
	const fixedHeader = 4
	body := lines[fixedHeader:]
	maxScroll := max(len(body)-(browse.height-fixedHeader), 0)
	if browse.detailScroll > maxScroll {
		browse.detailScroll = maxScroll
	}
	body = body[min(browse.detailScroll, len(body)):]

	visible := append(append([]string{}, lines[:fixedHeader]...), body...)
	if len(visible) > browse.height {
		visible = visible[:browse.height]
	}

	paneStyle := lipgloss.NewStyle().Width(width).MaxWidth(width)
	return paneStyle.Render(strings.Join(visible, "\n"))
}
