// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "testing"

func TestFuzzyMatchBasic(t *testing.T) {
	result := FuzzyMatch("Littmann stethoscope, barely used", []rune("stetho"), nil)
	if result.Score <= 0 {
		t.Fatal("expected positive score for substring match")
	}
	if len(result.Positions) == 0 {
		t.Fatal("expected non-empty match positions")
	}
}

func TestFuzzyMatchNonContiguous(t *testing.T) {
	// "ana tb" style queries: scattered characters still match.
	result := FuzzyMatch("anatomy textbook", []rune("antb"), nil)
	if result.Score <= 0 {
		t.Fatal("expected positive score for non-contiguous fuzzy match")
	}
}

func TestFuzzyMatchNoMatch(t *testing.T) {
	result := FuzzyMatch("anatomy textbook", []rune("xyz"), nil)
	if result.Score != 0 {
		t.Errorf("expected zero score for no match, got %d", result.Score)
	}
	if len(result.Positions) != 0 {
		t.Errorf("expected empty positions for no match, got %v", result.Positions)
	}
}

func TestFuzzyMatchCaseInsensitive(t *testing.T) {
	result := FuzzyMatch("BP Monitor OMRON", []rune("omron"), nil)
	if result.Score <= 0 {
		t.Fatalf("expected case-insensitive match, got score=%d", result.Score)
	}
}

func TestFuzzyMatchUppercasePattern(t *testing.T) {
	result := FuzzyMatch("bp monitor omron", []rune("OMRON"), nil)
	if result.Score <= 0 {
		t.Fatalf("expected uppercase pattern to match, got score=%d", result.Score)
	}
}

func TestFuzzyMatchEmptyPattern(t *testing.T) {
	result := FuzzyMatch("anything", []rune{}, nil)
	if result.Score != 0 {
		t.Errorf("expected zero score for empty pattern, got %d", result.Score)
	}
}

func TestFuzzyMatchPositionsInBounds(t *testing.T) {
	text := "hostel lamp"
	result := FuzzyMatch(text, []rune("hl"), nil)
	if result.Score <= 0 {
		t.Fatal("expected match")
	}
	for _, position := range result.Positions {
		if position < 0 || position >= len([]rune(text)) {
			t.Errorf("position %d out of bounds for %q", position, text)
		}
	}
}
