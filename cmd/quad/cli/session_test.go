// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quad-market/quad/lib/market"
)

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	session := &market.Session{
		UserID: "user-1",
		Name:   "Priya",
		Email:  "priya@example.edu",
		Campus: "CMC Vellore",
	}

	if err := SaveSession(session, path); err != nil {
		t.Fatalf("SaveSession() error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		t.Errorf("session file mode = %o, want 0600", mode)
	}

	loaded, err := LoadSession(path)
	if err != nil {
		t.Fatalf("LoadSession() error: %v", err)
	}
	if *loaded != *session {
		t.Errorf("loaded = %+v, want %+v", loaded, session)
	}
}

func TestLoadSession_MissingDirectsToLogin(t *testing.T) {
	_, err := LoadSession(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected an error for a missing session")
	}
	if !strings.Contains(err.Error(), "quad login") {
		t.Errorf("error = %v, want a pointer to quad login", err)
	}
}

func TestLoadSession_RejectsEmptyUserID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte(`{"name":"x"}`), 0600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSession(path)
	if err == nil || !strings.Contains(err.Error(), "user_id") {
		t.Errorf("error = %v, want a user_id complaint", err)
	}
}

func TestLoadSession_RejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSession(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestDeleteSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := SaveSession(&market.Session{UserID: "user-1"}, path); err != nil {
		t.Fatal(err)
	}
	if err := DeleteSession(path); err != nil {
		t.Fatalf("DeleteSession() error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("session file should be gone")
	}

	// Deleting again is a no-op, not an error.
	if err := DeleteSession(path); err != nil {
		t.Errorf("second DeleteSession() error: %v", err)
	}
}
