// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source. Real() wraps the
// time package for production use; Fake() gives tests deterministic
// control over time so that polling loops and duration measurements
// can be exercised without real sleeps.
package clock
