// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package market

// Category classifies an item listing. The backend stores the string
// values verbatim; the set mirrors what the marketplace accepts.
type Category string

const (
	CategoryBooks       Category = "books"
	CategoryInstruments Category = "medical-instruments"
	CategoryElectronics Category = "electronics"
	CategoryHostel      Category = "hostel"
	CategoryOther       Category = "other"
)

// Categories returns every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryBooks,
		CategoryInstruments,
		CategoryElectronics,
		CategoryHostel,
		CategoryOther,
	}
}

// Label returns a human-readable name for the category.
func (category Category) Label() string {
	switch category {
	case CategoryBooks:
		return "Books"
	case CategoryInstruments:
		return "Medical Instruments"
	case CategoryElectronics:
		return "Electronics"
	case CategoryHostel:
		return "Hostel/Personal"
	case CategoryOther:
		return "Other"
	default:
		return string(category)
	}
}

// Valid reports whether the category is one of the accepted values.
func (category Category) Valid() bool {
	switch category {
	case CategoryBooks, CategoryInstruments, CategoryElectronics,
		CategoryHostel, CategoryOther:
		return true
	}
	return false
}

// Condition describes an item's physical state.
type Condition string

const (
	ConditionNew     Condition = "New"
	ConditionLikeNew Condition = "Like New"
	ConditionGood    Condition = "Good"
	ConditionFair    Condition = "Fair"
)

// Conditions returns every valid condition from best to worst.
func Conditions() []Condition {
	return []Condition{ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair}
}

// OfferStatus is the lifecycle state of an offer. Pending is the
// initial state; accepted and declined are terminal. Only the item's
// seller can move an offer out of pending, and the backend enforces
// that — the client merely reflects it.
type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferDeclined OfferStatus = "declined"
)

// Terminal reports whether the status admits no further transition.
func (status OfferStatus) Terminal() bool {
	return status == OfferAccepted || status == OfferDeclined
}

// OfferAction is a seller decision on a pending offer.
type OfferAction string

const (
	ActionAccept  OfferAction = "accept"
	ActionDecline OfferAction = "decline"
)

// Session is the identity payload returned by signup and login. The
// backend issues no token — identity travels as explicit *_id fields
// on each request — so the session is purely client-held state.
type Session struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Campus string `json:"campus,omitempty"`
}

// User is a profile record as returned by GET /users/{id}.
type User struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Campus string `json:"campus,omitempty"`
}

// Item is a marketplace listing. The backend assigns "_id" on creation;
// items are immutable from the client's view except via re-fetch.
type Item struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    Category  `json:"category"`
	Condition   Condition `json:"condition"`
	Price       float64   `json:"price"`
	SellerID    string    `json:"seller_id"`
	Campus      string    `json:"campus,omitempty"`
}

// Offer is a buyer-proposed price against an item, pending the seller's
// decision. Created by a buyer, mutated only by the seller's
// accept/decline action, never deleted.
type Offer struct {
	ID           string      `json:"_id"`
	ItemID       string      `json:"item_id"`
	BuyerID      string      `json:"buyer_id"`
	SellerID     string      `json:"seller_id"`
	OfferedPrice float64     `json:"offered_price"`
	Message      string      `json:"message,omitempty"`
	Status       OfferStatus `json:"status"`
}

// Rating is a one-shot star rating of a counterparty. ItemID may be the
// placeholder "na" when the rating is not tied to a transaction.
type Rating struct {
	ID      string `json:"_id"`
	RaterID string `json:"rater_id"`
	RateeID string `json:"ratee_id"`
	ItemID  string `json:"item_id"`
	Stars   int    `json:"stars"`
	Comment string `json:"comment,omitempty"`
}

// RatingItemPlaceholder is the sentinel item reference for ratings
// submitted outside a specific transaction context.
const RatingItemPlaceholder = "na"

// SearchFilters narrows an item search. Empty fields are omitted from
// the request entirely — the backend treats an absent field as "no
// constraint", and sending empty strings instead would change the
// filter semantics.
type SearchFilters struct {
	Query    string   `json:"q,omitempty"`
	Campus   string   `json:"campus,omitempty"`
	Category Category `json:"category,omitempty"`
}
