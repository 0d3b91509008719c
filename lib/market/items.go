// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package market

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// CreateItemRequest contains the fields for listing a new item.
type CreateItemRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    Category  `json:"category"`
	Condition   Condition `json:"condition"`
	Price       float64   `json:"price"`
	Campus      string    `json:"campus,omitempty"`
	SellerID    string    `json:"seller_id"`
}

// NearbyOptions controls the nearby-items query. Zero-valued fields are
// omitted from the query string.
type NearbyOptions struct {
	Campus string // restrict to a campus
	Limit  int    // maximum results
}

func (options NearbyOptions) queryParams() string {
	values := url.Values{}
	if options.Campus != "" {
		values.Set("campus", options.Campus)
	}
	if options.Limit > 0 {
		values.Set("limit", strconv.Itoa(options.Limit))
	}
	return values.Encode()
}

// CreateItem lists a new item for sale and returns the created record.
func (client *Client) CreateItem(ctx context.Context, request CreateItemRequest) (*Item, error) {
	var item Item
	if err := client.post(ctx, "/items", request, &item); err != nil {
		return nil, fmt.Errorf("creating item %q: %w", request.Title, err)
	}
	return &item, nil
}

// SearchItems queries the catalog with the given filters. Empty filter
// fields are omitted from the request body entirely, so an all-empty
// filter returns the unfiltered catalog.
func (client *Client) SearchItems(ctx context.Context, filters SearchFilters) ([]Item, error) {
	var items []Item
	if err := client.post(ctx, "/items/search", filters, &items); err != nil {
		return nil, fmt.Errorf("searching items: %w", err)
	}
	return items, nil
}

// NearbyItems retrieves items near the caller, per the backend's
// distance policy.
func (client *Client) NearbyItems(ctx context.Context, options NearbyOptions) ([]Item, error) {
	path := "/nearby/items"
	if query := options.queryParams(); query != "" {
		path += "?" + query
	}

	var items []Item
	if err := client.get(ctx, path, &items); err != nil {
		return nil, fmt.Errorf("listing nearby items: %w", err)
	}
	return items, nil
}
