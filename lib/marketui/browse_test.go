// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package marketui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quad-market/quad/lib/market"
	"github.com/quad-market/quad/lib/tui"
)

func newTestBrowse(items ...market.Item) BrowseModel {
	browse := NewBrowseModel(tui.DefaultTheme, DefaultKeyMap, "CMC Vellore", "monokai")
	browse.SetSize(100, 20)
	browse.HandleItemsLoaded(itemsLoadedMsg{
		items:   items,
		filters: browse.SearchFilters(),
	})
	return browse
}

func testItems() []market.Item {
	return []market.Item{
		{ID: "i1", Title: "Anatomy textbook", Category: market.CategoryBooks, Condition: market.ConditionGood, Price: 500},
		{ID: "i2", Title: "Stethoscope", Category: market.CategoryInstruments, Condition: market.ConditionLikeNew, Price: 1200},
		{ID: "i3", Title: "Desk lamp", Category: market.CategoryHostel, Condition: market.ConditionFair, Price: 150},
	}
}

func TestBrowseStaleResponseDropped(t *testing.T) {
	browse := newTestBrowse(testItems()...)
	if len(browse.matches) != 3 {
		t.Fatalf("matches = %d, want 3", len(browse.matches))
	}

	// The user moves to the next category filter before the first
	// reload answers.
	browse.CycleCategory()
	browse.HandleItemsLoaded(itemsLoadedMsg{
		items:   []market.Item{{ID: "stale"}},
		filters: market.SearchFilters{Campus: "CMC Vellore"},
	})
	if !browse.loading {
		t.Error("a stale response must not clear the in-flight flag")
	}
	if len(browse.items) != 3 {
		t.Error("a stale response must not replace the result set")
	}

	// The response for the current filters lands.
	browse.HandleItemsLoaded(itemsLoadedMsg{
		items:   []market.Item{{ID: "i1", Title: "Anatomy textbook"}},
		filters: browse.SearchFilters(),
	})
	if browse.loading {
		t.Error("the matching response should settle the reload")
	}
	if len(browse.items) != 1 {
		t.Errorf("items = %d, want 1", len(browse.items))
	}
}

func TestBrowseCategoryCycleWrapsToAll(t *testing.T) {
	browse := newTestBrowse()
	if browse.SearchFilters().Category != "" {
		t.Fatal("cycle should start at all categories")
	}
	for range market.Categories() {
		browse.CycleCategory()
		if browse.SearchFilters().Category == "" {
			t.Fatal("cycled back to all too early")
		}
	}
	browse.CycleCategory()
	if browse.SearchFilters().Category != "" {
		t.Error("cycle should wrap back to all categories")
	}
}

func TestBrowseFilterNarrowsAndRestoresSelection(t *testing.T) {
	browse := newTestBrowse(testItems()...)

	// Select the stethoscope, then filter down to it.
	browse.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if browse.selectedID != "i2" {
		t.Fatalf("selectedID = %q, want i2", browse.selectedID)
	}

	browse.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	for _, character := range "steth" {
		browse.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{character}})
	}
	if len(browse.matches) != 1 || browse.matches[0].Item.ID != "i2" {
		t.Fatalf("filter did not narrow to the stethoscope: %d matches", len(browse.matches))
	}

	// Clearing the filter keeps the same item selected.
	browse.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if len(browse.matches) != 3 {
		t.Fatalf("matches = %d after clear, want 3", len(browse.matches))
	}
	if browse.Selected() == nil || browse.Selected().ID != "i2" {
		t.Error("selection should survive clearing the filter")
	}
}

func TestBrowseFilterEnterSubmitsServerQuery(t *testing.T) {
	browse := newTestBrowse(testItems()...)

	browse.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	for _, character := range "stetho" {
		browse.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{character}})
	}

	if !browse.Update(tea.KeyMsg{Type: tea.KeyEnter}) {
		t.Fatal("Enter in the filter bar must request a server search")
	}
	if got := browse.SearchFilters().Query; got != "stetho" {
		t.Errorf("submitted query = %q, want %q", got, "stetho")
	}
	if !browse.loading {
		t.Error("a submitted query must mark the list as loading")
	}

	// Re-submitting the same text is a no-op.
	browse.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	if browse.Update(tea.KeyMsg{Type: tea.KeyEnter}) {
		t.Error("an unchanged query must not reload")
	}

	// Clearing the filter drops the query and returns to the catalog.
	if !browse.Update(tea.KeyMsg{Type: tea.KeyEsc}) {
		t.Fatal("clearing an active query must reload the catalog")
	}
	if browse.SearchFilters().Query != "" {
		t.Errorf("query after clear = %q", browse.SearchFilters().Query)
	}
}

func TestBrowseCursorClampedToMatches(t *testing.T) {
	browse := newTestBrowse(testItems()...)
	browse.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	if browse.cursor != 2 {
		t.Fatalf("cursor = %d after End, want 2", browse.cursor)
	}

	browse.HandleItemsLoaded(itemsLoadedMsg{
		items:   testItems()[:1],
		filters: browse.SearchFilters(),
	})
	if browse.cursor != 0 {
		t.Errorf("cursor = %d after shrink, want 0", browse.cursor)
	}
}

func TestBrowseDetailFocusScrollsBody(t *testing.T) {
	browse := newTestBrowse(testItems()...)
	browse.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !browse.focusDetail {
		t.Fatal("Tab should focus the detail pane")
	}
	browse.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if browse.detailScroll != 1 {
		t.Errorf("detailScroll = %d, want 1", browse.detailScroll)
	}
	if browse.cursor != 0 {
		t.Error("list cursor must not move while the detail pane is focused")
	}
	browse.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	browse.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if browse.detailScroll != 0 {
		t.Errorf("detailScroll = %d, want clamped at 0", browse.detailScroll)
	}
}

func TestBrowseEmptyState(t *testing.T) {
	browse := newTestBrowse()
	view := browse.View()
	if !strings.Contains(view, "No items found") {
		t.Error("expected the empty state in the list pane")
	}
	if browse.Selected() != nil {
		t.Error("Selected should be nil with no items")
	}
}

func TestBrowseViewShowsItemAndPrice(t *testing.T) {
	browse := newTestBrowse(testItems()...)
	view := browse.View()
	if !strings.Contains(view, "Anatomy textbook") {
		t.Error("expected the first item title in the view")
	}
	if !strings.Contains(view, "₹500") {
		t.Error("expected the price in the view")
	}
	if !strings.Contains(view, "3 items") {
		t.Error("expected the item count header")
	}
}
