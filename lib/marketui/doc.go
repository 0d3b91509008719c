// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

// Package marketui implements the interactive marketplace viewer as a
// bubbletea model tree. The root Model owns the session and routes
// between the auth screen and the main tabbed view (browse, offers,
// sell, profile).
//
// All gateway calls run as tea.Cmd closures against the Backend
// interface and deliver their outcome as messages; the models never
// block. Offer accept/decline is pessimistic: the row keeps its last
// confirmed state until the gateway answers, and a failed action
// leaves the data untouched and surfaces a fading notice in the
// status bar.
package marketui
