package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/gophertalk/models"
	"github.com/charmbracelet/bubbles/textarea"
)

const maxPostLength = 280

// composeModel edits the text of a new post or a reply.
type composeModel struct {
	text       textarea.Model
	replyTo    *models.Post
	returnTo   screen
	submitting bool
}

func newComposeModel(replyTo *models.Post, returnTo screen) composeModel {
	ta := textarea.New()
	ta.Placeholder = "What's happening?"
	ta.CharLimit = maxPostLength
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(5)
	ta.Focus()

	return composeModel{text: ta, replyTo: replyTo, returnTo: returnTo}
}

func (m composeModel) replyToID() *int64 {
	if m.replyTo == nil {
		return nil
	}
	id := m.replyTo.ID
	return &id
}

func (m composeModel) value() string {
	return strings.TrimSpace(m.text.Value())
}

func (m composeModel) View() string {
	title := "NEW POST"
	var b strings.Builder
	if m.replyTo != nil {
		title = "REPLY"
		b.WriteString(authorStyle.Render(authorName(*m.replyTo)) + ": " + fitText(m.replyTo.Text, 60) + "\n\n")
	}
	b.WriteString(m.text.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%d/%d", utf8.RuneCountInString(m.text.Value()), maxPostLength)))
	if m.submitting {
		b.WriteString("\n\n[Publishing...]")
	}

	return renderPage(title, b.String(), "ctrl+s: publish │ esc: cancel")
}
