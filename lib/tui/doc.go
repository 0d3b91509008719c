// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface components for
// Quad's interactive viewer. Built on bubbletea (Elm architecture),
// these components handle common patterns like modal overlays, fuzzy
// match scoring, scrollbars, markdown rendering, and ANSI-aware text
// manipulation.
//
// The marketplace views (browse, offers, profile) import this package
// for consistent look and behavior: same theme, same keyboard
// conventions, same overlay mechanics. Each view owns its own data
// source, layout, and domain-specific rendering.
package tui
