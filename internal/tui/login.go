// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/gophertalk/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// loginModel is the login form: user name and masked password.
type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	userName := textinput.New()
	userName.Placeholder = "user name"
	userName.CharLimit = 30
	userName.Width = 40
	userName.Focus()

	password := newPasswordInput("password")

	return loginModel{inputs: []textinput.Model{userName, password}}
}

func newPasswordInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 30
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

// cycleFocus moves focus by delta and returns the new index.
func cycleFocus(inputs []textinput.Model, focus, delta int) int {
	inputs[focus].Blur()
	focus = (focus + delta + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func (m loginModel) request() models.LoginRequest {
	return models.LoginRequest{
		UserName: strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
	}
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("Field      │ Value\n")
	b.WriteString("───────────┼────────────────────────────────────────────\n")
	b.WriteString("User name  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password   │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Logging in...]")
	} else {
		b.WriteString("\n[Log in]")
	}

	return renderPage("LOG IN", b.String(), "esc: back │ tab: next field │ enter: submit")
}
