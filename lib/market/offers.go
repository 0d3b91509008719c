// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package market

import (
	"context"
	"fmt"
)

// CreateOfferRequest contains the fields for proposing a price against
// an item. The backend resolves the item's seller; the client never
// sends seller_id on creation.
type CreateOfferRequest struct {
	ItemID       string  `json:"item_id"`
	BuyerID      string  `json:"buyer_id"`
	OfferedPrice float64 `json:"offered_price"`
	Message      string  `json:"message,omitempty"`
}

// CreateOffer proposes a price against an item. The created offer
// starts in the pending state.
func (client *Client) CreateOffer(ctx context.Context, request CreateOfferRequest) (*Offer, error) {
	var offer Offer
	if err := client.post(ctx, "/offers", request, &offer); err != nil {
		return nil, fmt.Errorf("creating offer on item %s: %w", request.ItemID, err)
	}
	return &offer, nil
}

// OffersForUser retrieves every offer where the user is buyer or
// seller. This is the single list call the negotiation view keys its
// refresh on.
func (client *Client) OffersForUser(ctx context.Context, userID string) ([]Offer, error) {
	var offers []Offer
	if err := client.get(ctx, "/offers/for-user/"+userID, &offers); err != nil {
		return nil, fmt.Errorf("listing offers for %s: %w", userID, err)
	}
	return offers, nil
}

// ActOnOffer applies a seller decision (accept or decline) to a pending
// offer and returns the updated record. Whether the caller is actually
// the offer's seller, and whether the offer is still pending, is
// enforced by the backend — a rejected transition comes back as an
// *APIError.
func (client *Client) ActOnOffer(ctx context.Context, offerID string, action OfferAction) (*Offer, error) {
	request := struct {
		Action OfferAction `json:"action"`
	}{Action: action}

	var offer Offer
	if err := client.post(ctx, "/offers/"+offerID+"/action", request, &offer); err != nil {
		return nil, fmt.Errorf("applying %s to offer %s: %w", action, offerID, err)
	}
	return &offer, nil
}
