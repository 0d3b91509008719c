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

func TestCreateOffer_PostsToOffers(t *testing.T) {
	var receivedPath string
	var receivedBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedPath = request.URL.Path
		raw, _ := io.ReadAll(request.Body)
		json.Unmarshal(raw, &receivedBody)
		writer.Write([]byte(`{"_id":"offer-1","item_id":"item-1","buyer_id":"u1","seller_id":"u2","offered_price":400,"status":"pending"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	offer, err := client.CreateOffer(context.Background(), CreateOfferRequest{
		ItemID:       "item-1",
		BuyerID:      "u1",
		OfferedPrice: 400,
		Message:      "would 400 work?",
	})
	if err != nil {
		t.Fatalf("CreateOffer: %v", err)
	}

	if receivedPath != "/offers" {
		t.Errorf("path = %q, want /offers", receivedPath)
	}
	if receivedBody["offered_price"] != float64(400) {
		t.Errorf("offered_price = %v, want 400", receivedBody["offered_price"])
	}
	if offer.Status != OfferPending {
		t.Errorf("status = %q, want new offers pending", offer.Status)
	}
}

func TestOffersForUser_PathIncludesUserID(t *testing.T) {
	var receivedMethod, receivedPath string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedMethod = request.Method
		receivedPath = request.URL.Path
		writer.Write([]byte(`[
			{"_id":"o1","item_id":"i1","buyer_id":"u9","seller_id":"u1","offered_price":120,"status":"pending"},
			{"_id":"o2","item_id":"i2","buyer_id":"u1","seller_id":"u4","offered_price":780,"status":"accepted"}
		]`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	offers, err := client.OffersForUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("OffersForUser: %v", err)
	}

	if receivedMethod != http.MethodGet || receivedPath != "/offers/for-user/u1" {
		t.Errorf("request = %s %s, want GET /offers/for-user/u1", receivedMethod, receivedPath)
	}
	if len(offers) != 2 {
		t.Fatalf("len(offers) = %d, want 2", len(offers))
	}
	if !offers[1].Status.Terminal() {
		t.Errorf("accepted offer should be terminal")
	}
}

func TestActOnOffer_PostsActionBody(t *testing.T) {
	tests := []struct {
		action     OfferAction
		wantStatus OfferStatus
	}{
		{ActionAccept, OfferAccepted},
		{ActionDecline, OfferDeclined},
	}
	for _, test := range tests {
		t.Run(string(test.action), func(t *testing.T) {
			var receivedPath string
			var receivedBody map[string]any
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				receivedPath = request.URL.Path
				raw, _ := io.ReadAll(request.Body)
				json.Unmarshal(raw, &receivedBody)
				response := map[string]any{"_id": "offer-1", "status": string(test.wantStatus)}
				json.NewEncoder(writer).Encode(response)
			}))
			defer server.Close()

			client := newTestClient(t, server)
			offer, err := client.ActOnOffer(context.Background(), "offer-1", test.action)
			if err != nil {
				t.Fatalf("ActOnOffer: %v", err)
			}

			if receivedPath != "/offers/offer-1/action" {
				t.Errorf("path = %q, want /offers/offer-1/action", receivedPath)
			}
			if receivedBody["action"] != string(test.action) {
				t.Errorf("action body = %v, want %q", receivedBody["action"], test.action)
			}
			if offer.Status != test.wantStatus {
				t.Errorf("status = %q, want %q", offer.Status, test.wantStatus)
			}
		})
	}
}

func TestActOnOffer_TerminalOfferConflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusBadRequest)
		writer.Write([]byte(`{"detail":"offer is not pending"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.ActOnOffer(context.Background(), "offer-1", ActionAccept)
	if err == nil {
		t.Fatal("expected error when acting on a settled offer")
	}
	if !IsValidation(err) {
		t.Errorf("IsValidation = false, want true for %v", err)
	}
}
