// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package marketui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quad-market/quad/lib/market"
	"github.com/quad-market/quad/lib/tui"
)

// ProfileModel is the profile tab: the current user's record with
// inline editing of name and campus. Edits are pessimistic like offer
// actions: the displayed record only changes when the gateway
// confirms the patch.
type ProfileModel struct {
	theme tui.Theme

	width  int
	height int

	user    *market.User
	loading bool

	editing bool
	name    textinput.Model
	campus  textinput.Model
	focused int // 0 = name, 1 = campus.

	saving bool
}

// NewProfileModel creates the profile tab.
func NewProfileModel(theme tui.Theme) ProfileModel {
	name := textinput.New()
	name.Prompt = "   name› "
	name.CharLimit = 80

	campus := textinput.New()
	campus.Prompt = " campus› "
	campus.CharLimit = 80

	return ProfileModel{
		theme:   theme,
		loading: true,
		name:    name,
		campus:  campus,
	}
}

// SetSize updates the tab's drawable area.
func (profile *ProfileModel) SetSize(width, height int) {
	profile.width = width
	profile.height = height
}

// HandleLoaded installs the fetched user record.
func (profile *ProfileModel) HandleLoaded(message profileLoadedMsg) {
	profile.loading = false
	if message.err == nil {
		profile.user = message.user
	}
}

// HandleSaved finishes a patch. The confirmed record replaces the
// display; a failed patch leaves the old record visible.
func (profile *ProfileModel) HandleSaved(message profileSavedMsg) {
	profile.saving = false
	if message.err != nil {
		return
	}
	profile.user = message.user
	profile.editing = false
}

// Update processes a key message. When the user saves an edit, the
// returned request is non-nil.
func (profile *ProfileModel) Update(message tea.KeyMsg) (*market.UpdateProfileRequest, tea.Cmd) {
	if !profile.editing {
		if message.Type == tea.KeyRunes && string(message.Runes) == "e" && profile.user != nil {
			profile.editing = true
			profile.name.SetValue(profile.user.Name)
			profile.campus.SetValue(profile.user.Campus)
			profile.focused = 0
			profile.name.Focus()
			profile.campus.Blur()
		}
		return nil, nil
	}

	switch message.Type {
	case tea.KeyEsc:
		profile.editing = false
		return nil, nil

	case tea.KeyTab, tea.KeyDown, tea.KeyUp:
		if profile.focused == 0 {
			profile.focused = 1
			profile.name.Blur()
			profile.campus.Focus()
		} else {
			profile.focused = 0
			profile.campus.Blur()
			profile.name.Focus()
		}
		return nil, nil

	case tea.KeyEnter:
		if profile.saving || profile.user == nil {
			return nil, nil
		}
		request := market.UpdateProfileRequest{}
		if name := strings.TrimSpace(profile.name.Value()); name != "" && name != profile.user.Name {
			request.Name = &name
		}
		if campus := strings.TrimSpace(profile.campus.Value()); campus != profile.user.Campus {
			request.Campus = &campus
		}
		if request.Name == nil && request.Campus == nil {
			profile.editing = false
			return nil, nil
		}
		profile.saving = true
		return &request, nil
	}

	var cmd tea.Cmd
	if profile.focused == 0 {
		profile.name, cmd = profile.name.Update(message)
	} else {
		profile.campus, cmd = profile.campus.Update(message)
	}
	return nil, cmd
}

// View renders the profile tab.
func (profile *ProfileModel) View() string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(profile.theme.HeaderForeground)
	labelStyle := lipgloss.NewStyle().Foreground(profile.theme.FaintText)
	valueStyle := lipgloss.NewStyle().Foreground(profile.theme.NormalText)

	var lines []string
	switch {
	case profile.loading:
		lines = append(lines, " "+labelStyle.Render("loading profile…"))

	case profile.user == nil:
		lines = append(lines, " "+labelStyle.Render("profile unavailable"))

	case profile.editing:
		lines = append(lines, " "+headerStyle.Render("Edit profile"))
		lines = append(lines, "")
		lines = append(lines, " "+profile.name.View())
		lines = append(lines, " "+profile.campus.View())
		lines = append(lines, "")
		if profile.saving {
			lines = append(lines, " "+labelStyle.Render("saving…"))
		} else {
			lines = append(lines, " "+labelStyle.Render("Enter save  Tab next field  Esc cancel"))
		}

	default:
		lines = append(lines, " "+headerStyle.Render(profile.user.Name))
		lines = append(lines, "")
		lines = append(lines, " "+labelStyle.Render("email   ")+valueStyle.Render(profile.user.Email))
		lines = append(lines, " "+labelStyle.Render("campus  ")+valueStyle.Render(profile.user.Campus))
		lines = append(lines, " "+labelStyle.Render("user id ")+valueStyle.Render(profile.user.UserID))
		lines = append(lines, "")
		lines = append(lines, " "+labelStyle.Render("e edit"))
	}

	return lipgloss.NewStyle().Width(profile.width).MaxWidth(profile.width).
		Render(strings.Join(lines, "\n"))
}
