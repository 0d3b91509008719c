// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package marketui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quad-market/quad/lib/market"
)

// Backend is the slice of the gateway client the viewer uses. Narrow
// so tests can substitute a fake without a network.
type Backend interface {
	Signup(ctx context.Context, request market.SignupRequest) (*market.Session, error)
	Login(ctx context.Context, request market.LoginRequest) (*market.Session, error)
	Profile(ctx context.Context, userID string) (*market.User, error)
	UpdateProfile(ctx context.Context, userID string, request market.UpdateProfileRequest) (*market.User, error)
	SearchItems(ctx context.Context, filters market.SearchFilters) ([]market.Item, error)
	CreateItem(ctx context.Context, request market.CreateItemRequest) (*market.Item, error)
	CreateOffer(ctx context.Context, request market.CreateOfferRequest) (*market.Offer, error)
	OffersForUser(ctx context.Context, userID string) ([]market.Offer, error)
	ActOnOffer(ctx context.Context, offerID string, action market.OfferAction) (*market.Offer, error)
	CreateRating(ctx context.Context, request market.CreateRatingRequest) (*market.Rating, error)
}

// requestTimeout bounds every gateway call issued from the viewer.
const requestTimeout = 30 * time.Second

// noticeFadeDelay is how long error and confirmation notices stay in
// the status bar before fading.
const noticeFadeDelay = 4 * time.Second

// authResultMsg carries the outcome of a login or signup call.
type authResultMsg struct {
	session *market.Session
	err     error
}

// itemsLoadedMsg carries a fresh browse result set. The filters echo
// what was requested so a stale response for an abandoned query can
// be dropped.
type itemsLoadedMsg struct {
	items   []market.Item
	filters market.SearchFilters
	err     error
}

// offersLoadedMsg carries the full offer set for the current user.
type offersLoadedMsg struct {
	offers []market.Offer
	err    error
}

// offerActionMsg is sent when an accept/decline call completes. On
// success the settled offer replaces the stale row; on error the rows
// are left untouched and err is shown in the status bar.
type offerActionMsg struct {
	offer *market.Offer
	err   error
}

// offerCreatedMsg is sent when a new offer submission completes.
type offerCreatedMsg struct {
	offer *market.Offer
	err   error
}

// itemCreatedMsg is sent when a sell-form submission completes.
type itemCreatedMsg struct {
	item *market.Item
	err  error
}

// ratingCreatedMsg is sent when a rating submission completes.
type ratingCreatedMsg struct {
	err error
}

// profileLoadedMsg carries the user record for the profile tab.
type profileLoadedMsg struct {
	user *market.User
	err  error
}

// profileSavedMsg is sent when a profile edit completes.
type profileSavedMsg struct {
	user *market.User
	err  error
}

// noticeFadeMsg clears the status bar notice.
type noticeFadeMsg struct{}

func withRequestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

func loginCommand(backend Backend, request market.LoginRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withRequestContext()
		defer cancel()
		session, err := backend.Login(ctx, request)
		return authResultMsg{session: session, err: err}
	}
}

func signupCommand(backend Backend, request market.SignupRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withRequestContext()
		defer cancel()
		session, err := backend.Signup(ctx, request)
		return authResultMsg{session: session, err: err}
	}
}

func loadItemsCommand(backend Backend, filters market.SearchFilters) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withRequestContext()
		defer cancel()
		items, err := backend.SearchItems(ctx, filters)
		return itemsLoadedMsg{items: items, filters: filters, err: err}
	}
}

func loadOffersCommand(backend Backend, userID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withRequestContext()
		defer cancel()
		offers, err := backend.OffersForUser(ctx, userID)
		return offersLoadedMsg{offers: offers, err: err}
	}
}

func offerActionCommand(backend Backend, offerID string, action market.OfferAction) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withRequestContext()
		defer cancel()
		offer, err := backend.ActOnOffer(ctx, offerID, action)
		return offerActionMsg{offer: offer, err: err}
	}
}

func createOfferCommand(backend Backend, request market.CreateOfferRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withRequestContext()
		defer cancel()
		offer, err := backend.CreateOffer(ctx, request)
		return offerCreatedMsg{offer: offer, err: err}
	}
}

func createItemCommand(backend Backend, request market.CreateItemRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withRequestContext()
		defer cancel()
		item, err := backend.CreateItem(ctx, request)
		return itemCreatedMsg{item: item, err: err}
	}
}

func createRatingCommand(backend Backend, request market.CreateRatingRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withRequestContext()
		defer cancel()
		_, err := backend.CreateRating(ctx, request)
		return ratingCreatedMsg{err: err}
	}
}

func loadProfileCommand(backend Backend, userID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withRequestContext()
		defer cancel()
		user, err := backend.Profile(ctx, userID)
		return profileLoadedMsg{user: user, err: err}
	}
}

func saveProfileCommand(backend Backend, userID string, request market.UpdateProfileRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withRequestContext()
		defer cancel()
		user, err := backend.UpdateProfile(ctx, userID, request)
		return profileSavedMsg{user: user, err: err}
	}
}

func noticeFadeCommand() tea.Cmd {
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{}
	})
}
