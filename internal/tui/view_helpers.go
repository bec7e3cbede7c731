package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/gophertalk/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

const timeLayout = "2006-01-02 15:04"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: exit"))

	return b.String()
}

// fitText cuts v to at most max runes.
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func authorName(p models.Post) string {
	if p.User == nil || p.User.UserName == "" {
		return fmt.Sprintf("user#%d", p.UserID)
	}
	return "@" + p.User.UserName
}

func count(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func flag(v *bool) bool {
	return v != nil && *v
}

// postStats renders the counters line of a post.
func postStats(p models.Post) string {
	likes := fmt.Sprintf("♥ %d", count(p.LikesCount))
	if flag(p.UserLiked) {
		likes = likedStyle.Render(likes)
	}
	return fmt.Sprintf("%s  views %d  replies %d", likes, count(p.ViewsCount), count(p.RepliesCount))
}

// postLine renders a post as one list row.
func postLine(p models.Post, selected bool) string {
	cursor := "  "
	text := fitText(strings.ReplaceAll(p.Text, "\n", " "), 50)
	if selected {
		cursor = "> "
		text = selectedStyle.Render(text)
	}
	return fmt.Sprintf("%s%s %s\n    %s", cursor, authorStyle.Render(authorName(p)), text, helpStyle.Render(postStats(p)))
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
