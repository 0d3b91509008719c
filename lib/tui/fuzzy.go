// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// FuzzyResult holds the outcome of matching a pattern against a text.
// Score is zero when the pattern does not match; Positions are rune
// indices into the text for match highlighting.
type FuzzyResult struct {
	Score     int
	Positions []int
}

// FuzzyMatch scores a pattern against a text using fzf's V2 algorithm.
// Matching is case-insensitive: both sides are lowercased before
// scoring, which matches how users type filter queries. The slab may
// be nil; callers filtering many rows should allocate one with
// util.MakeSlab and reuse it across calls.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{}
	}

	lowered := make([]rune, len(pattern))
	for index, r := range pattern {
		lowered[index] = toLowerRune(r)
	}

	chars := util.ToChars([]byte(strings.ToLower(text)))
	result, positions := algo.FuzzyMatchV2(false, true, true, &chars, lowered, true, slab)
	if result.Score <= 0 {
		return FuzzyResult{}
	}

	matched := FuzzyResult{Score: result.Score}
	if positions != nil {
		matched.Positions = *positions
	}
	return matched
}

func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
