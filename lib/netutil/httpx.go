// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides HTTP response I/O helpers for the market
// client. All response body reads are bounded at MaxResponseSize to
// prevent unbounded memory allocation from a misbehaving server. These
// helpers are for JSON API responses, not streaming transfers.
package netutil

import (
	"io"
)

// MaxResponseSize is the bound on JSON API response body reads: 32 MB.
// This exists solely to prevent a pathological response from exhausting
// memory. Legitimate marketplace responses (item pages, offer lists)
// are orders of magnitude smaller; the limit is generous so that it
// never interferes with normal operation.
const MaxResponseSize int64 = 32 << 20

// ReadResponse reads a JSON API response body up to MaxResponseSize
// bytes. Use instead of io.ReadAll when reading HTTP response bodies.
func ReadResponse(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxResponseSize))
}
