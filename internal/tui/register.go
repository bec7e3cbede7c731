package tui

import (
	"strings"

	"github.com/MKhiriev/gophertalk/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	registerUserName = iota
	registerFirstName
	registerLastName
	registerPassword
	registerPasswordConfirm
)

var registerLabels = []string{
	"User name  ",
	"First name ",
	"Last name  ",
	"Password   ",
	"Repeat     ",
}

// registerModel is the sign-up form. First and last names are optional.
type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
	fields := make([]textinput.Model, len(registerLabels))

	for _, i := range []int{registerUserName, registerFirstName, registerLastName} {
		fields[i] = textinput.New()
		fields[i].CharLimit = 30
		fields[i].Width = 40
	}
	fields[registerUserName].Placeholder = "letters, digits, _ or ."
	fields[registerFirstName].Placeholder = "optional"
	fields[registerLastName].Placeholder = "optional"
	fields[registerPassword] = newPasswordInput("password")
	fields[registerPasswordConfirm] = newPasswordInput("repeat password")

	fields[registerUserName].Focus()

	return registerModel{inputs: fields}
}

func optionalValue(in textinput.Model) *string {
	v := strings.TrimSpace(in.Value())
	if v == "" {
		return nil
	}
	return &v
}

func (m registerModel) request() models.RegisterRequest {
	return models.RegisterRequest{
		UserName:        strings.TrimSpace(m.inputs[registerUserName].Value()),
		Password:        m.inputs[registerPassword].Value(),
		PasswordConfirm: m.inputs[registerPasswordConfirm].Value(),
		FirstName:       optionalValue(m.inputs[registerFirstName]),
		LastName:        optionalValue(m.inputs[registerLastName]),
	}
}

// check reports the first problem the server would reject anyway.
func (m registerModel) check() string {
	req := m.request()
	switch {
	case req.UserName == "" || req.Password == "":
		return "User name and password are required"
	case req.Password != req.PasswordConfirm:
		return "Passwords do not match"
	}
	return ""
}

func (m registerModel) View() string {
	var b strings.Builder
	b.WriteString("Field      │ Value\n")
	b.WriteString("───────────┼────────────────────────────────────────────\n")
	for i, label := range registerLabels {
		b.WriteString(label)
		b.WriteString("│ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Signing up...]")
	} else {
		b.WriteString("\n[Sign up]")
	}

	return renderPage("SIGN UP", b.String(), "esc: back │ tab: next field │ enter: submit")
}
