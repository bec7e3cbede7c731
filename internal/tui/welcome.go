package tui

import "strings"

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Log in", "Sign up"}}
}

func (m welcomeModel) View() string {
	var b strings.Builder
	b.WriteString("Choose an action:\n\n")
	for i, item := range m.items {
		if i == m.idx {
			b.WriteString("> " + selectedStyle.Render(item) + "\n")
			continue
		}
		b.WriteString("  " + item + "\n")
	}
	return renderPage("GOPHERTALK", strings.TrimRight(b.String(), "\n"), "↑/↓: move │ enter: select │ v: about │ q: quit")
}
