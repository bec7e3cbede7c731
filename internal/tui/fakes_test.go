package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/gophertalk/internal/service"
	"github.com/MKhiriev/gophertalk/models"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

var errUnexpectedCall = errors.New("unexpected call")

type fakeAuth struct {
	login    func(req models.LoginRequest) (models.Session, error)
	register func(req models.RegisterRequest) (models.Session, error)

	loginReqs    []models.LoginRequest
	registerReqs []models.RegisterRequest
}

func (f *fakeAuth) Register(_ context.Context, req models.RegisterRequest) (models.Session, error) {
	f.registerReqs = append(f.registerReqs, req)
	if f.register == nil {
		return models.Session{}, errUnexpectedCall
	}
	return f.register(req)
}

func (f *fakeAuth) Login(_ context.Context, req models.LoginRequest) (models.Session, error) {
	f.loginReqs = append(f.loginReqs, req)
	if f.login == nil {
		return models.Session{}, errUnexpectedCall
	}
	return f.login(req)
}

func (f *fakeAuth) Restore(context.Context) (models.Session, error) {
	return models.Session{}, errUnexpectedCall
}

func (f *fakeAuth) Logout(context.Context) error { return errUnexpectedCall }

type publishCall struct {
	text      string
	replyToID *int64
}

type fakeFeed struct {
	posts   []models.Post
	feedErr error
	filters []models.PostFilter

	threads   map[int64][]models.Post
	threadErr error
	opened    []int64

	published  []publishCall
	publishErr error

	liked, unliked, viewed, deleted []int64
	actionErr                       error

	version string
}

func (f *fakeFeed) Feed(_ context.Context, filter models.PostFilter) ([]models.Post, error) {
	f.filters = append(f.filters, filter)
	return f.posts, f.feedErr
}

func (f *fakeFeed) Thread(_ context.Context, postID int64, _ models.Pagination) (models.Post, []models.Post, error) {
	f.opened = append(f.opened, postID)
	if f.threadErr != nil {
		return models.Post{}, nil, f.threadErr
	}
	return f.find(postID), f.threads[postID], nil
}

func (f *fakeFeed) find(postID int64) models.Post {
	for _, p := range f.posts {
		if p.ID == postID {
			return p
		}
	}
	for _, replies := range f.threads {
		for _, p := range replies {
			if p.ID == postID {
				return p
			}
		}
	}
	return models.Post{ID: postID, Text: "unknown"}
}

func (f *fakeFeed) Publish(_ context.Context, text string, replyToID *int64) (models.Post, error) {
	f.published = append(f.published, publishCall{text: text, replyToID: replyToID})
	return models.Post{ID: 100, Text: text, ReplyToID: replyToID}, f.publishErr
}

func (f *fakeFeed) View(_ context.Context, postID int64) error {
	f.viewed = append(f.viewed, postID)
	return f.actionErr
}

func (f *fakeFeed) Like(_ context.Context, postID int64) error {
	f.liked = append(f.liked, postID)
	return f.actionErr
}

func (f *fakeFeed) Unlike(_ context.Context, postID int64) error {
	f.unliked = append(f.unliked, postID)
	return f.actionErr
}

func (f *fakeFeed) Delete(_ context.Context, postID int64) error {
	f.deleted = append(f.deleted, postID)
	return f.actionErr
}

func (f *fakeFeed) ServerVersion(context.Context) (string, error) {
	return f.version, nil
}

func testServices(auth *fakeAuth, feed *fakeFeed) *service.ClientServices {
	return &service.ClientServices{AuthService: auth, FeedService: feed}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m appModel, k string) (appModel, tea.Cmd) {
	next, cmd := m.Update(keyMsg(k))
	return next.(appModel), cmd
}

// typeText sends s rune by rune and drops the cursor blink commands.
func typeText(m appModel, s string) appModel {
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(appModel)
	}
	return m
}

// drive runs cmd and every command produced while handling its messages.
// Spinner ticks, status timers and quit are not fed back.
func drive(m appModel, cmd tea.Cmd) appModel {
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0 && steps < 100; steps++ {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}

		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case spinner.TickMsg, clearStatusMsg, tea.QuitMsg, nil:
		default:
			next, nextCmd := m.Update(msg)
			m = next.(appModel)
			queue = append(queue, nextCmd)
		}
	}
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func ptr[T any](v T) *T { return &v }
