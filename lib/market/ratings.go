// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package market

import (
	"context"
	"fmt"
)

// CreateRatingRequest contains the fields for rating a counterparty.
// ItemID should be RatingItemPlaceholder when the rating is not tied
// to a specific transaction.
type CreateRatingRequest struct {
	RaterID string `json:"rater_id"`
	RateeID string `json:"ratee_id"`
	ItemID  string `json:"item_id"`
	Stars   int    `json:"stars"`
	Comment string `json:"comment,omitempty"`
}

// CreateRating submits a star rating. Ratings have no update or delete
// path — one submission, one record.
func (client *Client) CreateRating(ctx context.Context, request CreateRatingRequest) (*Rating, error) {
	var rating Rating
	if err := client.post(ctx, "/ratings", request, &rating); err != nil {
		return nil, fmt.Errorf("rating user %s: %w", request.RateeID, err)
	}
	return &rating, nil
}
