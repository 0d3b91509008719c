// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package market

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSignup_ReturnsSession(t *testing.T) {
	var receivedPath string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedPath = request.URL.Path
		writer.Write([]byte(`{"user_id":"u1","name":"Asha","email":"asha@campus.edu","campus":"AIIMS Delhi"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	session, err := client.Signup(context.Background(), SignupRequest{
		Name:     "Asha",
		Email:    "asha@campus.edu",
		Password: "secret",
		Campus:   "AIIMS Delhi",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	if receivedPath != "/auth/signup" {
		t.Errorf("path = %q, want /auth/signup", receivedPath)
	}
	if session.UserID != "u1" || session.Campus != "AIIMS Delhi" {
		t.Errorf("session = %+v, want user_id and campus from response", session)
	}
}

func TestLogin_PostsCredentials(t *testing.T) {
	var receivedBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/auth/login" {
			t.Errorf("path = %q, want /auth/login", request.URL.Path)
		}
		raw, _ := io.ReadAll(request.Body)
		json.Unmarshal(raw, &receivedBody)
		writer.Write([]byte(`{"user_id":"u1","name":"Asha"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	if _, err := client.Login(context.Background(), LoginRequest{Email: "asha@campus.edu", Password: "secret"}); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if receivedBody["email"] != "asha@campus.edu" || receivedBody["password"] != "secret" {
		t.Errorf("credentials body = %v, want email and password", receivedBody)
	}
}

func TestProfile_GetsUserByID(t *testing.T) {
	var receivedMethod, receivedPath string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedMethod = request.Method
		receivedPath = request.URL.Path
		writer.Write([]byte(`{"user_id":"u1","name":"Asha","campus":"AIIMS Delhi"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	user, err := client.Profile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if receivedMethod != http.MethodGet || receivedPath != "/users/u1" {
		t.Errorf("request = %s %s, want GET /users/u1", receivedMethod, receivedPath)
	}
	if user.Name != "Asha" {
		t.Errorf("Name = %q, want Asha", user.Name)
	}
}

func TestUpdateProfile_PatchesOnlyProvidedFields(t *testing.T) {
	var receivedMethod string
	var receivedBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedMethod = request.Method
		raw, _ := io.ReadAll(request.Body)
		json.Unmarshal(raw, &receivedBody)
		writer.Write([]byte(`{"user_id":"u1","name":"Asha","campus":"CMC Vellore"}`))
	}))
	defer server.Close()

	campus := "CMC Vellore"
	client := newTestClient(t, server)
	user, err := client.UpdateProfile(context.Background(), "u1", UpdateProfileRequest{Campus: &campus})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	if receivedMethod != http.MethodPatch {
		t.Errorf("method = %q, want PATCH", receivedMethod)
	}
	if receivedBody["campus"] != "CMC Vellore" {
		t.Errorf("campus = %v, want updated value", receivedBody["campus"])
	}
	if _, present := receivedBody["name"]; present {
		t.Errorf("body contains name field, want unset fields omitted")
	}
	if user.Campus != "CMC Vellore" {
		t.Errorf("Campus = %q, want server echo", user.Campus)
	}
}

func TestCreateRating_PostsToRatings(t *testing.T) {
	var receivedPath string
	var receivedBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedPath = request.URL.Path
		raw, _ := io.ReadAll(request.Body)
		json.Unmarshal(raw, &receivedBody)
		writer.Write([]byte(`{"_id":"r1","rater_id":"u1","ratee_id":"u2","item_id":"na","stars":5}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	rating, err := client.CreateRating(context.Background(), CreateRatingRequest{
		RaterID: "u1",
		RateeID: "u2",
		ItemID:  RatingItemPlaceholder,
		Stars:   5,
	})
	if err != nil {
		t.Fatalf("CreateRating: %v", err)
	}

	if receivedPath != "/ratings" {
		t.Errorf("path = %q, want /ratings", receivedPath)
	}
	if receivedBody["item_id"] != RatingItemPlaceholder {
		t.Errorf("item_id = %v, want %q placeholder for general ratings", receivedBody["item_id"], RatingItemPlaceholder)
	}
	if rating.Stars != 5 {
		t.Errorf("Stars = %d, want 5", rating.Stars)
	}
}
