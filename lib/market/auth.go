// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package market

import (
	"context"
	"fmt"
)

// SignupRequest contains the fields for creating an account.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Campus   string `json:"campus,omitempty"`
}

// LoginRequest contains the credentials for an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest contains the profile fields to change. Only
// non-nil fields are sent in the PATCH request.
type UpdateProfileRequest struct {
	Name   *string `json:"name,omitempty"`
	Campus *string `json:"campus,omitempty"`
}

// Signup creates a new account and returns its session.
func (client *Client) Signup(ctx context.Context, request SignupRequest) (*Session, error) {
	var session Session
	if err := client.post(ctx, "/auth/signup", request, &session); err != nil {
		return nil, fmt.Errorf("signing up %s: %w", request.Email, err)
	}
	return &session, nil
}

// Login authenticates an existing account and returns its session.
func (client *Client) Login(ctx context.Context, request LoginRequest) (*Session, error) {
	var session Session
	if err := client.post(ctx, "/auth/login", request, &session); err != nil {
		return nil, fmt.Errorf("logging in %s: %w", request.Email, err)
	}
	return &session, nil
}

// Profile retrieves a user's profile by ID.
func (client *Client) Profile(ctx context.Context, userID string) (*User, error) {
	var user User
	if err := client.get(ctx, "/users/"+userID, &user); err != nil {
		return nil, fmt.Errorf("getting profile %s: %w", userID, err)
	}
	return &user, nil
}

// UpdateProfile applies a partial profile update and returns the
// updated user.
func (client *Client) UpdateProfile(ctx context.Context, userID string, request UpdateProfileRequest) (*User, error) {
	var user User
	if err := client.patch(ctx, "/users/"+userID, request, &user); err != nil {
		return nil, fmt.Errorf("updating profile %s: %w", userID, err)
	}
	return &user, nil
}
