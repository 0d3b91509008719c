// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quad-market/quad/lib/market"
)

// LoadSession reads the saved login session from path. Returns a
// clear error directing the user to "quad login" if no session
// exists. The path comes from the config's session.file setting,
// overridable with QUAD_SESSION_FILE.
func LoadSession(path string) (*market.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no Quad session found at %s — run \"quad login\" first", path)
		}
		return nil, fmt.Errorf("reading session file %s: %w", path, err)
	}

	var session market.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("parsing session file %s: %w", path, err)
	}

	if session.UserID == "" {
		return nil, fmt.Errorf("session file %s has no user_id", path)
	}

	return &session, nil
}

// SaveSession writes a login session to path. Creates the parent
// directory with mode 0700 if it doesn't exist. The file is written
// with mode 0600 — the gateway trusts the user_id inside it, so it is
// owner-only like an SSH key.
func SaveSession(session *market.Session, path string) error {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("creating session directory %s: %w", directory, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing session file %s: %w", path, err)
	}
	return nil
}

// DeleteSession removes the saved session. The gateway has no
// server-side logout, so forgetting the local identity is the whole
// operation. A missing file is not an error.
func DeleteSession(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file %s: %w", path, err)
	}
	return nil
}
