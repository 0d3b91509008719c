// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package marketui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/quad-market/quad/lib/market"
	"github.com/quad-market/quad/lib/tui"
)

// Tab identifies which main view is active.
type Tab int

const (
	// TabBrowse shows the item list with the detail pane.
	TabBrowse Tab = iota
	// TabOffers shows the negotiation panel.
	TabOffers
	// TabSell shows the new-listing form.
	TabSell
	// TabProfile shows the current user's record.
	TabProfile
)

var tabLabels = []string{"browse", "offers", "sell", "profile"}

// Options configures the root viewer model.
type Options struct {
	// Session is the logged-in session; nil starts at the auth screen.
	Session *market.Session

	// Campus preselects the browse campus filter. Ignored when the
	// session carries a campus.
	Campus string

	// SyntaxTheme is the chroma style for code blocks in item
	// descriptions.
	SyntaxTheme string
}

// Model is the top-level bubbletea model for the marketplace viewer.
// It owns the session: before login only the auth screen is live, and
// every gateway call after login stamps the session's user ID.
type Model struct {
	backend Backend
	theme   tui.Theme
	keys    KeyMap

	width  int
	height int
	ready  bool

	session *market.Session

	auth    AuthModel
	browse  BrowseModel
	offers  OffersModel
	sell    SellModel
	profile ProfileModel

	activeTab Tab

	offerModal  *OfferModal
	ratingModal *RatingModal

	// Status bar notice with fade. Errors render in the error color;
	// confirmations in the normal color.
	notice        string
	noticeIsError bool

	campus      string
	syntaxTheme string
}

// NewModel creates the viewer. With a session the main view opens
// directly; without one the auth screen runs first.
func NewModel(backend Backend, options Options) Model {
	theme := tui.DefaultTheme
	syntaxTheme := options.SyntaxTheme
	if syntaxTheme == "" {
		syntaxTheme = "monokai"
	}

	model := Model{
		backend:     backend,
		theme:       theme,
		keys:        DefaultKeyMap,
		auth:        NewAuthModel(theme),
		campus:      options.Campus,
		syntaxTheme: syntaxTheme,
	}
	if options.Session != nil {
		model.installSession(*options.Session)
	}
	return model
}

// installSession transitions from the auth screen to the main view.
func (model *Model) installSession(session market.Session) {
	model.session = &session
	campus := session.Campus
	if campus == "" {
		campus = model.campus
	}
	model.browse = NewBrowseModel(model.theme, model.keys, campus, model.syntaxTheme)
	model.offers = NewOffersModel(model.theme, model.keys, session.UserID)
	model.sell = NewSellModel(model.theme, campus)
	model.profile = NewProfileModel(model.theme)
	model.activeTab = TabBrowse
	model.resizeChildren()
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	if model.session == nil {
		return nil
	}
	return model.initialLoads()
}

func (model Model) initialLoads() tea.Cmd {
	return tea.Batch(
		loadItemsCommand(model.backend, model.browse.SearchFilters()),
		loadOffersCommand(model.backend, model.session.UserID),
		loadProfileCommand(model.backend, model.session.UserID),
	)
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return model.handleKey(message)

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.resizeChildren()

	case authResultMsg:
		model.auth.HandleResult(message)
		if message.err == nil && message.session != nil {
			model.installSession(*message.session)
			return model, model.initialLoads()
		}

	case itemsLoadedMsg:
		if message.err != nil {
			return model.showError(message.err.Error())
		}
		model.browse.HandleItemsLoaded(message)

	case offersLoadedMsg:
		if message.err != nil {
			model.offers.loading = false
			return model.showError(message.err.Error())
		}
		model.offers.HandleOffersLoaded(message)

	case offerActionMsg:
		model.offers.HandleActionResult(message)
		if message.err != nil {
			return model.showError(message.err.Error())
		}
		// Re-fetch so both sides of the trade converge on the
		// gateway's view.
		model.offers.MarkLoading()
		return model, loadOffersCommand(model.backend, model.session.UserID)

	case offerCreatedMsg:
		if message.err != nil {
			if model.offerModal != nil {
				model.offerModal.HandleRejected(message.err)
				return model, nil
			}
			return model.showError(message.err.Error())
		}
		model.offerModal = nil
		model.offers.MarkLoading()
		batch := tea.Batch(
			loadOffersCommand(model.backend, model.session.UserID),
			noticeFadeCommand(),
		)
		model.notice = "Offer sent"
		model.noticeIsError = false
		return model, batch

	case itemCreatedMsg:
		model.sell.HandleCreated(message)
		if message.err != nil {
			return model.showError(message.err.Error())
		}
		model.browse.MarkLoading()
		model.notice = "Listed"
		model.noticeIsError = false
		return model, tea.Batch(
			loadItemsCommand(model.backend, model.browse.SearchFilters()),
			noticeFadeCommand(),
		)

	case ratingCreatedMsg:
		if message.err != nil {
			return model.showError(message.err.Error())
		}
		model.notice = "Rating submitted"
		model.noticeIsError = false
		return model, noticeFadeCommand()

	case profileLoadedMsg:
		if message.err != nil {
			model.profile.loading = false
			return model.showError(message.err.Error())
		}
		model.profile.HandleLoaded(message)

	case profileSavedMsg:
		model.profile.HandleSaved(message)
		if message.err != nil {
			return model.showError(message.err.Error())
		}
		model.notice = "Profile saved"
		model.noticeIsError = false
		return model, noticeFadeCommand()

	case noticeFadeMsg:
		model.notice = ""
	}
	return model, nil
}

// showError puts an error notice in the status bar and schedules its
// fade. The underlying view data is left untouched.
func (model Model) showError(text string) (tea.Model, tea.Cmd) {
	model.notice = text
	model.noticeIsError = true
	return model, noticeFadeCommand()
}

func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits, even inside text inputs.
	if message.Type == tea.KeyCtrlC {
		return model, tea.Quit
	}

	if model.session == nil {
		return model.handleAuthKey(message)
	}

	if model.offerModal != nil {
		return model.handleOfferModalKey(message)
	}
	if model.ratingModal != nil {
		return model.handleRatingModalKey(message)
	}

	// Typing contexts swallow everything except Ctrl+C: tab digits
	// and q must reach the text inputs as characters.
	if model.inTypingContext() {
		return model.routeToActiveTab(message)
	}

	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.TabBrowse):
		model.activeTab = TabBrowse

	case key.Matches(message, model.keys.TabOffers):
		model.activeTab = TabOffers

	case key.Matches(message, model.keys.TabSell):
		model.activeTab = TabSell

	case key.Matches(message, model.keys.TabProfile):
		model.activeTab = TabProfile

	case key.Matches(message, model.keys.Refresh):
		return model.refreshActiveTab()

	case key.Matches(message, model.keys.MakeOffer) && model.activeTab == TabBrowse:
		return model.openOfferModal()

	case key.Matches(message, model.keys.Accept) && model.activeTab == TabOffers:
		return model.actOnSelectedOffer(market.ActionAccept)

	case key.Matches(message, model.keys.Decline) && model.activeTab == TabOffers:
		return model.actOnSelectedOffer(market.ActionDecline)

	case key.Matches(message, model.keys.Rate) && model.activeTab == TabOffers:
		return model.openRatingModal()

	default:
		return model.routeToActiveTab(message)
	}
	return model, nil
}

// inTypingContext reports whether keystrokes belong to a text input
// rather than global shortcuts.
func (model Model) inTypingContext() bool {
	switch model.activeTab {
	case TabSell:
		return true
	case TabProfile:
		return model.profile.editing
	case TabBrowse:
		return model.browse.filter.Active
	}
	return false
}

func (model Model) handleAuthKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	submission, cmd := model.auth.Update(message)
	if submission == nil {
		return model, cmd
	}
	if submission.login != nil {
		return model, loginCommand(model.backend, *submission.login)
	}
	return model, signupCommand(model.backend, *submission.signup)
}

func (model Model) handleOfferModalKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if message.Type == tea.KeyEsc {
		model.offerModal = nil
		return model, nil
	}
	request, cmd := model.offerModal.Update(message, model.session.UserID)
	if request == nil {
		return model, cmd
	}
	// The modal stays open, frozen, until the gateway answers. A
	// rejection re-opens the form with the typed values intact.
	model.offerModal.MarkSubmitting()
	return model, createOfferCommand(model.backend, *request)
}

func (model Model) handleRatingModalKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if message.Type == tea.KeyEsc {
		model.ratingModal = nil
		return model, nil
	}
	request, cmd := model.ratingModal.Update(message, model.session.UserID)
	if request == nil {
		return model, cmd
	}
	model.ratingModal = nil
	return model, createRatingCommand(model.backend, *request)
}

func (model Model) routeToActiveTab(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch model.activeTab {
	case TabBrowse:
		if model.browse.Update(message) {
			return model, loadItemsCommand(model.backend, model.browse.SearchFilters())
		}

	case TabOffers:
		model.offers.Update(message)

	case TabSell:
		request, cmd := model.sell.Update(message, model.session.UserID)
		if request != nil {
			return model, createItemCommand(model.backend, *request)
		}
		return model, cmd

	case TabProfile:
		request, cmd := model.profile.Update(message)
		if request != nil {
			return model, saveProfileCommand(model.backend, model.session.UserID, *request)
		}
		return model, cmd
	}
	return model, nil
}

func (model Model) refreshActiveTab() (tea.Model, tea.Cmd) {
	switch model.activeTab {
	case TabBrowse:
		model.browse.MarkLoading()
		return model, loadItemsCommand(model.backend, model.browse.SearchFilters())
	case TabOffers:
		model.offers.MarkLoading()
		return model, loadOffersCommand(model.backend, model.session.UserID)
	case TabProfile:
		return model, loadProfileCommand(model.backend, model.session.UserID)
	}
	return model, nil
}

func (model Model) openOfferModal() (tea.Model, tea.Cmd) {
	item := model.browse.Selected()
	if item == nil {
		return model, nil
	}
	if item.SellerID == model.session.UserID {
		return model.showError("that's your own listing")
	}
	modal := NewOfferModal(*item, model.theme)
	model.offerModal = &modal
	return model, nil
}

func (model Model) openRatingModal() (tea.Model, tea.Cmd) {
	offer := model.offers.Selected()
	if offer == nil {
		return model, nil
	}
	if offer.Status != market.OfferAccepted {
		return model.showError("rate after a trade settles")
	}
	counterparty := offer.SellerID
	if model.offers.Incoming(*offer) {
		counterparty = offer.BuyerID
	}
	modal := NewRatingModal(counterparty, offer.ItemID, model.theme)
	model.ratingModal = &modal
	return model, nil
}

func (model Model) actOnSelectedOffer(action market.OfferAction) (tea.Model, tea.Cmd) {
	offer := model.offers.Selected()
	if offer == nil {
		return model, nil
	}
	if !model.offers.CanAct(*offer) {
		if offer.Status.Terminal() {
			return model.showError("offer already " + string(offer.Status))
		}
		if !model.offers.Incoming(*offer) {
			return model.showError("only the seller settles an offer")
		}
		return model, nil
	}
	model.offers.MarkActing(offer.ID)
	return model, offerActionCommand(model.backend, offer.ID, action)
}

// contentHeight is the rows available to the active tab: total minus
// the tab bar, bottom separator, and status bar.
func (model Model) contentHeight() int {
	return max(model.height-3, 1)
}

func (model *Model) resizeChildren() {
	if model.width <= 0 || model.height <= 0 {
		return
	}
	model.auth.SetSize(model.width, model.height)
	if model.session == nil {
		return
	}
	height := model.contentHeight()
	model.browse.SetSize(model.width, height)
	model.offers.SetSize(model.width, height)
	model.sell.SetSize(model.width, height)
	model.profile.SetSize(model.width, height)
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	if model.session == nil {
		return model.auth.View()
	}

	var sections []string

	// Top chrome line: the filter bar replaces the tab bar while the
	// browse filter is engaged so the layout doesn't shift.
	filterView := model.browse.filter.View(model.theme, model.width)
	if model.activeTab == TabBrowse && filterView != "" {
		sections = append(sections, filterView)
	} else {
		sections = append(sections, model.renderTabBar())
	}

	switch model.activeTab {
	case TabBrowse:
		sections = append(sections, model.browse.View())
	case TabOffers:
		sections = append(sections, model.offers.View())
	case TabSell:
		sections = append(sections, model.sell.View())
	case TabProfile:
		sections = append(sections, model.profile.View())
	}

	separator := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", model.width))
	sections = append(sections, separator)
	sections = append(sections, model.renderStatusBar())

	output := strings.Join(sections, "\n")

	if model.offerModal != nil {
		lines, anchorX, anchorY := model.offerModal.Render(model.width, model.height)
		output = tui.SpliceOverlay(output, lines, anchorX, anchorY)
	}
	if model.ratingModal != nil {
		lines, anchorX, anchorY := model.ratingModal.Render(model.width, model.height)
		output = tui.SpliceOverlay(output, lines, anchorX, anchorY)
	}

	return output
}

func (model Model) renderTabBar() string {
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(model.theme.FaintText)

	var parts []string
	for index, label := range tabLabels {
		numbered := string(rune('1'+index)) + ":" + label
		if Tab(index) == model.activeTab {
			parts = append(parts, activeStyle.Render(numbered))
		} else {
			parts = append(parts, inactiveStyle.Render(numbered))
		}
	}
	bar := " " + strings.Join(parts, "  ")

	name := model.session.Name
	if model.session.Campus != "" {
		name += " · " + model.session.Campus
	}
	right := inactiveStyle.Render(name + " ")

	padding := model.width - ansi.StringWidth(bar) - ansi.StringWidth(right)
	if padding < 1 {
		padding = 1
	}
	return bar + strings.Repeat(" ", padding) + right
}

func (model Model) renderStatusBar() string {
	if model.notice != "" {
		style := lipgloss.NewStyle().Foreground(model.theme.NormalText)
		if model.noticeIsError {
			style = lipgloss.NewStyle().Foreground(model.theme.ErrorForeground)
		}
		return " " + style.Render(ansi.Truncate(model.notice, model.width-2, "…"))
	}

	helpStyle := lipgloss.NewStyle().Foreground(model.theme.HelpText)
	var help string
	switch model.activeTab {
	case TabBrowse:
		help = "j/k move  Tab pane  / filter  c category  o make offer  r refresh  q quit"
	case TabOffers:
		help = "j/k move  a accept  d decline  t rate  r refresh  q quit"
	case TabSell:
		help = "Tab next field  Enter post  Ctrl+C quit"
	case TabProfile:
		help = "e edit  r refresh  q quit"
	}
	return " " + helpStyle.Render(ansi.Truncate(help, model.width-2, "…"))
}
