package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/gophertalk/models"
)

const threadPageSize = 20

// threadModel shows a post and a page of its replies. Row 0 is the post
// itself, rows from 1 are replies.
type threadModel struct {
	post    models.Post
	replies []models.Post
	idx     int
	offset  int64
	loading bool
	status  string

	// parents holds the ids of the threads opened before this one.
	parents []int64
}

func (m threadModel) selected() models.Post {
	if m.idx > 0 && m.idx <= len(m.replies) {
		return m.replies[m.idx-1]
	}
	return m.post
}

func (m threadModel) rows() int {
	return len(m.replies) + 1
}

func (m threadModel) page() models.Pagination {
	return models.Pagination{Limit: threadPageSize, Offset: m.offset}
}

func (m threadModel) View() string {
	var b strings.Builder

	if m.loading && m.post.ID == 0 {
		b.WriteString("Loading...")
		return renderPage("THREAD", b.String(), "esc: back")
	}

	p := m.post
	header := authorStyle.Render(authorName(p)) + "  " + helpStyle.Render(p.CreatedAt.Local().Format(timeLayout))
	if m.idx == 0 {
		header = "> " + header
	}
	b.WriteString(header + "\n\n")
	b.WriteString(p.Text + "\n\n")
	b.WriteString(postStats(p) + "\n")
	if p.ReplyToID != nil {
		b.WriteString(helpStyle.Render(fmt.Sprintf("reply to post #%d", *p.ReplyToID)) + "\n")
	}

	b.WriteString("\nReplies")
	if m.offset > 0 {
		b.WriteString(fmt.Sprintf(" (from %d)", m.offset+1))
	}
	b.WriteString(":\n")
	if len(m.replies) == 0 {
		b.WriteString("  none\n")
	}
	for i, r := range m.replies {
		b.WriteString(postLine(r, m.idx == i+1))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	return renderPage(fmt.Sprintf("THREAD #%d", p.ID), strings.TrimRight(b.String(), "\n"),
		"enter: open reply │ r: reply │ f: like │ c: copy │ d: delete │ ←/→: replies page │ esc: back")
}
