// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

// Package market is a typed client for the campus marketplace backend
// API. It owns the single HTTP/JSON call primitive that every domain
// operation (auth, items, offers, ratings) is a thin wrapper over.
//
// The backend is authoritative for all business rules: the client
// performs no validation beyond what its callers do before invoking an
// operation, sends no retries, and keeps no cache. Responses that are
// not valid JSON are treated as an empty object rather than a failure,
// so endpoints with empty success bodies do not error. Non-2xx
// responses become an *APIError carrying the server's human-readable
// detail when one is present.
package market
