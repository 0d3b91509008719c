// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package marketui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quad-market/quad/lib/market"
	"github.com/quad-market/quad/lib/tui"
)

// Auth screen modes.
type authMode int

const (
	authModeLogin authMode = iota
	authModeSignup
)

// Auth form field order. Name and campus only exist in signup mode.
const (
	authFieldName = iota
	authFieldEmail
	authFieldPassword
	authFieldCampus
	authFieldCount
)

// AuthModel is the entry screen: login by default, with Ctrl+S
// toggling to signup. Submission state lives here; the root model
// owns the resulting session.
type AuthModel struct {
	theme tui.Theme

	width  int
	height int

	mode    authMode
	focused int

	name     textinput.Model
	email    textinput.Model
	password textinput.Model
	campus   textinput.Model

	submitting bool
	errorText  string
}

// authSubmission is what the auth screen hands the root model when
// the user submits: exactly one of login or signup is non-nil.
type authSubmission struct {
	login  *market.LoginRequest
	signup *market.SignupRequest
}

// NewAuthModel creates the auth screen in login mode.
func NewAuthModel(theme tui.Theme) AuthModel {
	name := textinput.New()
	name.Prompt = "     name› "
	name.CharLimit = 80

	email := textinput.New()
	email.Prompt = "    email› "
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Prompt = " password› "
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	campus := textinput.New()
	campus.Prompt = "   campus› "
	campus.CharLimit = 80

	return AuthModel{
		theme:    theme,
		mode:     authModeLogin,
		focused:  authFieldEmail,
		name:     name,
		email:    email,
		password: password,
		campus:   campus,
	}
}

// SetSize updates the screen's drawable area.
func (auth *AuthModel) SetSize(width, height int) {
	auth.width = width
	auth.height = height
}

// HandleResult finishes a login/signup call. The root model installs
// the session on success; the auth screen only reports failure.
func (auth *AuthModel) HandleResult(message authResultMsg) {
	auth.submitting = false
	if message.err != nil {
		auth.errorText = message.err.Error()
	}
}

// Update processes a key message. When the user submits, the returned
// submission is non-nil.
func (auth *AuthModel) Update(message tea.KeyMsg) (*authSubmission, tea.Cmd) {
	auth.errorText = ""

	switch message.Type {
	case tea.KeyCtrlS:
		auth.toggleMode()
		return nil, nil

	case tea.KeyTab, tea.KeyDown:
		auth.cycleFocus(1)
		return nil, nil

	case tea.KeyShiftTab, tea.KeyUp:
		auth.cycleFocus(-1)
		return nil, nil

	case tea.KeyEnter:
		if auth.submitting {
			return nil, nil
		}
		submission, err := auth.buildSubmission()
		if err != nil {
			auth.errorText = err.Error()
			return nil, nil
		}
		auth.submitting = true
		return submission, nil
	}

	var cmd tea.Cmd
	switch auth.focused {
	case authFieldName:
		auth.name, cmd = auth.name.Update(message)
	case authFieldEmail:
		auth.email, cmd = auth.email.Update(message)
	case authFieldPassword:
		auth.password, cmd = auth.password.Update(message)
	case authFieldCampus:
		auth.campus, cmd = auth.campus.Update(message)
	}
	return nil, cmd
}

func (auth *AuthModel) toggleMode() {
	if auth.mode == authModeLogin {
		auth.mode = authModeSignup
		auth.setFocus(authFieldName)
	} else {
		auth.mode = authModeLogin
		auth.setFocus(authFieldEmail)
	}
}

// cycleFocus moves focus between fields, skipping the signup-only
// fields in login mode.
func (auth *AuthModel) cycleFocus(delta int) {
	field := auth.focused
	for {
		field = (field + delta + authFieldCount) % authFieldCount
		if auth.mode == authModeLogin && (field == authFieldName || field == authFieldCampus) {
			continue
		}
		break
	}
	auth.setFocus(field)
}

func (auth *AuthModel) setFocus(field int) {
	auth.focused = field
	auth.name.Blur()
	auth.email.Blur()
	auth.password.Blur()
	auth.campus.Blur()
	switch field {
	case authFieldName:
		auth.name.Focus()
	case authFieldEmail:
		auth.email.Focus()
	case authFieldPassword:
		auth.password.Focus()
	case authFieldCampus:
		auth.campus.Focus()
	}
}

func (auth *AuthModel) buildSubmission() (*authSubmission, error) {
	email := strings.TrimSpace(auth.email.Value())
	password := auth.password.Value()
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	if auth.mode == authModeLogin {
		return &authSubmission{
			login: &market.LoginRequest{Email: email, Password: password},
		}, nil
	}

	name := strings.TrimSpace(auth.name.Value())
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	return &authSubmission{
		signup: &market.SignupRequest{
			Name:     name,
			Email:    email,
			Password: password,
			Campus:   strings.TrimSpace(auth.campus.Value()),
		},
	}, nil
}

// View renders the auth screen centered in the available area.
func (auth *AuthModel) View() string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(auth.theme.HeaderForeground)
	labelStyle := lipgloss.NewStyle().Foreground(auth.theme.FaintText)
	errorStyle := lipgloss.NewStyle().Foreground(auth.theme.ErrorForeground)

	var lines []string
	if auth.mode == authModeLogin {
		lines = append(lines, headerStyle.Render("Quad · log in"))
		lines = append(lines, "")
		lines = append(lines, auth.email.View())
		lines = append(lines, auth.password.View())
	} else {
		lines = append(lines, headerStyle.Render("Quad · sign up"))
		lines = append(lines, "")
		lines = append(lines, auth.name.View())
		lines = append(lines, auth.email.View())
		lines = append(lines, auth.password.View())
		lines = append(lines, auth.campus.View())
	}
	lines = append(lines, "")

	switch {
	case auth.errorText != "":
		lines = append(lines, errorStyle.Render(auth.errorText))
	case auth.submitting:
		lines = append(lines, labelStyle.Render("signing in…"))
	default:
		if auth.mode == authModeLogin {
			lines = append(lines, labelStyle.Render("Enter submit  Ctrl+S sign up instead"))
		} else {
			lines = append(lines, labelStyle.Render("Enter submit  Ctrl+S log in instead"))
		}
	}

	content := strings.Join(lines, "\n")
	if auth.width > 0 && auth.height > 0 {
		return lipgloss.Place(auth.width, auth.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
