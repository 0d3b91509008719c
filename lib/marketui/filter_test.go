// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package marketui

import (
	"testing"

	"github.com/quad-market/quad/lib/market"
)

func filterItems() []market.Item {
	return []market.Item{
		{ID: "i1", Title: "Anatomy textbook", Category: market.CategoryBooks},
		{ID: "i2", Title: "Stethoscope", Category: market.CategoryInstruments},
		{ID: "i3", Title: "Desk lamp", Category: market.CategoryHostel, Campus: "CMC Vellore"},
	}
}

func TestFilterEmptyReturnsAllInOrder(t *testing.T) {
	filter := FilterModel{}
	matches := filter.Apply(filterItems())
	if len(matches) != 3 {
		t.Fatalf("matches = %d, want 3", len(matches))
	}
	for index, id := range []string{"i1", "i2", "i3"} {
		if matches[index].Item.ID != id {
			t.Errorf("matches[%d] = %q, want %q", index, matches[index].Item.ID, id)
		}
		if matches[index].Score != 0 {
			t.Errorf("empty filter should not score, got %d", matches[index].Score)
		}
	}
}

func TestFilterNarrowsByTitle(t *testing.T) {
	filter := FilterModel{Input: "steth"}
	matches := filter.Apply(filterItems())
	if len(matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(matches))
	}
	if matches[0].Item.ID != "i2" {
		t.Errorf("match = %q, want i2", matches[0].Item.ID)
	}
	if len(matches[0].TitlePositions) == 0 {
		t.Error("title match should carry highlight positions")
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	filter := FilterModel{Input: "ANATOMY"}
	matches := filter.Apply(filterItems())
	if len(matches) != 1 || matches[0].Item.ID != "i1" {
		t.Fatalf("case-insensitive match failed: %d matches", len(matches))
	}
}

func TestFilterMatchesSecondaryFields(t *testing.T) {
	// "vellore" only appears in the campus field.
	filter := FilterModel{Input: "vellore"}
	matches := filter.Apply(filterItems())
	if len(matches) != 1 || matches[0].Item.ID != "i3" {
		t.Fatalf("campus match failed: %d matches", len(matches))
	}
	if len(matches[0].TitlePositions) != 0 {
		t.Error("a secondary-field match must not highlight title runes")
	}
}

func TestFilterExactBeatsScattered(t *testing.T) {
	items := []market.Item{
		{ID: "scattered", Title: "long antique marble paperweight"},
		{ID: "exact", Title: "lamp"},
	}
	filter := FilterModel{Input: "lamp"}
	matches := filter.Apply(items)
	if len(matches) < 1 {
		t.Fatal("expected at least the exact match")
	}
	if matches[0].Item.ID != "exact" {
		t.Errorf("best match = %q, want the contiguous title", matches[0].Item.ID)
	}
}

func TestFilterBackspaceAndClear(t *testing.T) {
	filter := FilterModel{Input: "ab", Active: true}
	if !filter.HandleBackspace() {
		t.Error("backspace should report a change")
	}
	if filter.Input != "a" {
		t.Errorf("input = %q, want %q", filter.Input, "a")
	}
	filter.Clear()
	if filter.Input != "" || filter.Active {
		t.Error("Clear should reset text and focus")
	}
	if filter.HandleBackspace() {
		t.Error("backspace on empty input should report no change")
	}
}
