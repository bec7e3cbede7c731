package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/gophertalk/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

const feedPageSize = 20

type feedModel struct {
	posts   []models.Post
	idx     int
	offset  int64
	loading bool
	spinner spinner.Model
	status  string

	// onlyMine limits the feed to the posts of the logged in user.
	onlyMine  bool
	query     string
	searching bool
	search    textinput.Model
}

func newFeedModel() feedModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	search := textinput.New()
	search.Placeholder = "search text"
	search.CharLimit = 100
	search.Width = 40

	return feedModel{spinner: s, search: search, loading: true}
}

func (m feedModel) filter(userID int64) models.PostFilter {
	f := models.PostFilter{
		Pagination: models.Pagination{Limit: feedPageSize, Offset: m.offset},
	}
	if m.query != "" {
		q := m.query
		f.Search = &q
	}
	if m.onlyMine {
		f.OwnerID = &userID
	}
	return f
}

func (m feedModel) current() (models.Post, bool) {
	if len(m.posts) == 0 || m.idx < 0 || m.idx >= len(m.posts) {
		return models.Post{}, false
	}
	return m.posts[m.idx], true
}

// hasNextPage reports whether the last load filled a whole page.
func (m feedModel) hasNextPage() bool {
	return len(m.posts) == feedPageSize
}

func (m feedModel) View(userName string) string {
	title := "FEED"
	if m.onlyMine {
		title = "MY POSTS"
	}
	title += fmt.Sprintf("  @%s  page %d", userName, m.offset/feedPageSize+1)
	if m.loading {
		title += "  " + m.spinner.View()
	}

	var b strings.Builder
	if m.searching {
		b.WriteString("Search: [" + m.search.View() + "]\n\n")
	} else if m.query != "" {
		b.WriteString("Search: \"" + m.query + "\"\n\n")
	}

	switch {
	case m.loading && len(m.posts) == 0:
		b.WriteString("Loading...")
	case len(m.posts) == 0:
		b.WriteString("No posts yet")
	default:
		for i, p := range m.posts {
			b.WriteString(postLine(p, i == m.idx))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	hotKeys := "enter: thread │ n: new │ r: reply │ f: like │ c: copy │ d: delete │ /: search │ m: mine │ ←/→: page │ g: reload │ v: about │ L: log out │ q: quit"
	if m.searching {
		hotKeys = "enter: search │ esc: cancel"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}
