// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command framework for the quad binary:
// command tree dispatch with typo suggestions, structured help output,
// exit-code control, logger construction, and the saved login session.
package cli
