package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/gophertalk/internal/service"
	"github.com/MKhiriev/gophertalk/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenFeed
	screenThread
	screenCompose
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

var (
	// writeClipboard is replaced in tests.
	writeClipboard = clipboard.WriteAll

	// statusTTL is how long a status line stays on screen.
	statusTTL = 2 * time.Second
)

type appModel struct {
	ctx           context.Context
	auth          service.ClientAuthService
	posts         service.ClientFeedService
	buildInfo     models.AppBuildInfo
	mode          appMode
	currentScreen screen

	welcome  welcomeModel
	login    loginModel
	register registerModel
	feed     feedModel
	thread   threadModel
	compose  composeModel

	session       models.Session
	serverVersion string

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete int64
	showBuildInfo bool

	quitByUser bool
	logout     bool
}

func newLoginAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		auth:          services.AuthService,
		posts:         services.FeedService,
		buildInfo:     buildInfo,
		mode:          modeLogin,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		feed:          newFeedModel(),
	}
}

func newMainAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, session models.Session) appModel {
	m := newLoginAppModel(ctx, services, buildInfo)
	m.mode = modeMain
	m.session = session
	m.currentScreen = screenFeed
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return tea.Batch(m.feed.spinner.Tick, m.cmdLoadFeed(), m.cmdServerVersion())
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.showConfirm {
			switch {
			case key.Matches(msg, keys.yes):
				m.showConfirm = false
				return m, m.cmdDelete(m.pendingDelete)
			case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
				m.showConfirm = false
				m.pendingDelete = 0
			}
			return m, nil
		}
	case authDoneMsg:
		m.session = msg.session
		m.setSubmitting(false)
		return m, tea.Quit
	case authFailedMsg:
		m.setSubmitting(false)
		m.showErrorf(humanizeError(msg.err))
		return m, nil
	case feedLoadedMsg:
		m.feed.loading = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.feed.posts = msg.posts
		m.feed.idx = clamp(m.feed.idx, len(m.feed.posts))
		return m, nil
	case threadLoadedMsg:
		m.thread.loading = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.thread.post = msg.post
		m.thread.replies = msg.replies
		m.thread.idx = clamp(m.thread.idx, m.thread.rows())
		return m, nil
	case postPublishedMsg:
		m.compose.submitting = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.currentScreen = m.compose.returnTo
		m.setStatus("Published")
		return m, tea.Batch(m.reload(), cmdClearStatus())
	case postActionMsg:
		if msg.err != nil {
			// a failed view mark is not worth interrupting the user for
			if msg.action == actionView && !errors.Is(msg.err, service.ErrSessionExpired) {
				return m, nil
			}
			return m, m.fail(msg.err)
		}
		return m, m.reload()
	case postDeletedMsg:
		m.pendingDelete = 0
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.setStatus("Deleted")
		if m.currentScreen == screenThread && msg.postID == m.thread.post.ID {
			return m, tea.Batch(m.closeThread(), cmdClearStatus())
		}
		return m, tea.Batch(m.reload(), cmdClearStatus())
	case serverVersionMsg:
		if msg.err == nil {
			m.serverVersion = msg.version
		}
		return m, nil
	case copiedMsg:
		m.setStatus("Copied!")
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.showErrorf(msg.err.Error())
		return m, nil
	case clearStatusMsg:
		m.setStatus("")
		return m, nil
	case spinner.TickMsg:
		if !m.feed.loading && !m.thread.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.feed.spinner, cmd = m.feed.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenFeed:
		return m.updateFeed(msg)
	case screenThread:
		return m.updateThread(msg)
	case screenCompose:
		return m.updateCompose(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.serverVersion))
	}

	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenFeed:
		body = m.feed.View(m.session.UserName)
	case screenThread:
		body = m.thread.View()
	case screenCompose:
		body = m.compose.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// fail shows err to the user. An expired session ends the main loop so that
// the user logs in again.
func (m *appModel) fail(err error) tea.Cmd {
	if m.mode == modeMain && errors.Is(err, service.ErrSessionExpired) {
		m.logout = true
		return tea.Quit
	}
	m.showErrorf(humanizeError(err))
	return nil
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.register.submitting = v
}

func (m *appModel) setStatus(status string) {
	m.feed.status = status
	m.thread.status = status
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login.focus = cycleFocus(m.login.inputs, m.login.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.focus = cycleFocus(m.login.inputs, m.login.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			req := m.login.request()
			if req.UserName == "" || req.Password == "" {
				m.showErrorf("User name and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(req)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register.focus = cycleFocus(m.register.inputs, m.register.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.focus = cycleFocus(m.register.inputs, m.register.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			if problem := m.register.check(); problem != "" {
				m.showErrorf(problem)
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(m.register.request())
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateFeed(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)

	if m.feed.searching {
		if ok {
			switch {
			case key.Matches(keyMsg, keys.esc):
				m.feed.searching = false
				m.feed.search.Blur()
				return m, nil
			case key.Matches(keyMsg, keys.enter):
				m.feed.searching = false
				m.feed.search.Blur()
				m.feed.query = m.feed.search.Value()
				m.feed.offset, m.feed.idx = 0, 0
				return m, m.loadFeed()
			}
		}
		var cmd tea.Cmd
		m.feed.search, cmd = m.feed.search.Update(msg)
		return m, cmd
	}

	if !ok {
		return m, nil
	}

	post, selected := m.feed.current()

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.feed.idx > 0 {
			m.feed.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.feed.idx < len(m.feed.posts)-1 {
			m.feed.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if selected {
			return m, m.openThread(post, nil)
		}
	case key.Matches(keyMsg, keys.newPost):
		m.compose = newComposeModel(nil, screenFeed)
		m.currentScreen = screenCompose
	case key.Matches(keyMsg, keys.reply):
		if selected {
			m.compose = newComposeModel(&post, screenFeed)
			m.currentScreen = screenCompose
		}
	case key.Matches(keyMsg, keys.like):
		if selected {
			return m, m.cmdToggleLike(post)
		}
	case key.Matches(keyMsg, keys.copy):
		if selected {
			return m, cmdCopyToClipboard(post.Text)
		}
	case key.Matches(keyMsg, keys.delete):
		if selected {
			m.askDelete(post)
		}
	case key.Matches(keyMsg, keys.search):
		m.feed.searching = true
		m.feed.search.SetValue(m.feed.query)
		m.feed.search.Focus()
	case key.Matches(keyMsg, keys.mine):
		m.feed.onlyMine = !m.feed.onlyMine
		m.feed.offset, m.feed.idx = 0, 0
		return m, m.loadFeed()
	case key.Matches(keyMsg, keys.left):
		if m.feed.offset > 0 {
			m.feed.offset = max(0, m.feed.offset-feedPageSize)
			m.feed.idx = 0
			return m, m.loadFeed()
		}
	case key.Matches(keyMsg, keys.right):
		if m.feed.hasNextPage() {
			m.feed.offset += feedPageSize
			m.feed.idx = 0
			return m, m.loadFeed()
		}
	case key.Matches(keyMsg, keys.reload):
		return m, m.loadFeed()
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateThread(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.esc) {
		return m, m.closeThread()
	}
	if m.thread.post.ID == 0 || m.thread.loading && m.thread.post.Text == "" {
		return m, nil
	}

	post := m.thread.selected()

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.thread.idx > 0 {
			m.thread.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.thread.idx < m.thread.rows()-1 {
			m.thread.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.thread.idx > 0 {
			parents := append(append([]int64(nil), m.thread.parents...), m.thread.post.ID)
			return m, m.openThread(post, parents)
		}
	case key.Matches(keyMsg, keys.reply):
		m.compose = newComposeModel(&post, screenThread)
		m.currentScreen = screenCompose
	case key.Matches(keyMsg, keys.like):
		return m, m.cmdToggleLike(post)
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(post.Text)
	case key.Matches(keyMsg, keys.delete):
		m.askDelete(post)
	case key.Matches(keyMsg, keys.left):
		if m.thread.offset > 0 {
			m.thread.offset = max(0, m.thread.offset-threadPageSize)
			m.thread.idx = 0
			return m, m.loadThread()
		}
	case key.Matches(keyMsg, keys.right):
		if len(m.thread.replies) == threadPageSize {
			m.thread.offset += threadPageSize
			m.thread.idx = 0
			return m, m.loadThread()
		}
	case key.Matches(keyMsg, keys.reload):
		return m, m.loadThread()
	}

	return m, nil
}

func (m appModel) updateCompose(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = m.compose.returnTo
			return m, nil
		case key.Matches(keyMsg, keys.submit):
			if m.compose.submitting {
				return m, nil
			}
			text := m.compose.value()
			if text == "" {
				m.showErrorf("Post text is required")
				return m, nil
			}
			m.compose.submitting = true
			return m, m.cmdPublish(text, m.compose.replyToID())
		}
	}

	var cmd tea.Cmd
	m.compose.text, cmd = m.compose.text.Update(msg)
	return m, cmd
}

// openThread shows post with its replies and marks it viewed.
func (m *appModel) openThread(post models.Post, parents []int64) tea.Cmd {
	m.thread = threadModel{post: post, loading: true, parents: parents}
	m.currentScreen = screenThread

	cmds := []tea.Cmd{m.feed.spinner.Tick, m.cmdLoadThread(post.ID, m.thread.page())}
	if !flag(post.UserViewed) {
		cmds = append(cmds, m.cmdAction(post.ID, actionView))
	}
	return tea.Batch(cmds...)
}

// closeThread goes back to the parent thread or to the feed.
func (m *appModel) closeThread() tea.Cmd {
	if n := len(m.thread.parents); n > 0 {
		parentID := m.thread.parents[n-1]
		m.thread = threadModel{post: models.Post{ID: parentID}, loading: true, parents: m.thread.parents[:n-1]}
		return m.loadThread()
	}
	m.currentScreen = screenFeed
	return m.loadFeed()
}

func (m *appModel) askDelete(post models.Post) {
	if post.UserID != m.session.UserID {
		m.showErrorf("You can delete only your own posts")
		return
	}
	m.showConfirm = true
	m.confirm.message = post.Text
	m.pendingDelete = post.ID
}

func (m *appModel) loadFeed() tea.Cmd {
	m.feed.loading = true
	return tea.Batch(m.feed.spinner.Tick, m.cmdLoadFeed())
}

func (m *appModel) loadThread() tea.Cmd {
	m.thread.loading = true
	return tea.Batch(m.feed.spinner.Tick, m.cmdLoadThread(m.thread.post.ID, m.thread.page()))
}

// reload refreshes whatever the current screen shows.
func (m *appModel) reload() tea.Cmd {
	if m.currentScreen == screenThread {
		return m.loadThread()
	}
	return m.loadFeed()
}

func (m appModel) cmdLogin(req models.LoginRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		session, err := auth.Login(ctx, req)
		if err != nil {
			return authFailedMsg{err: err}
		}
		return authDoneMsg{session: session}
	}
}

func (m appModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		session, err := auth.Register(ctx, req)
		if err != nil {
			return authFailedMsg{err: err}
		}
		return authDoneMsg{session: session}
	}
}

func (m appModel) cmdLoadFeed() tea.Cmd {
	ctx := m.ctx
	svc := m.posts
	filter := m.feed.filter(m.session.UserID)
	return func() tea.Msg {
		posts, err := svc.Feed(ctx, filter)
		return feedLoadedMsg{posts: posts, err: err}
	}
}

func (m appModel) cmdLoadThread(postID int64, page models.Pagination) tea.Cmd {
	ctx := m.ctx
	svc := m.posts
	return func() tea.Msg {
		post, replies, err := svc.Thread(ctx, postID, page)
		return threadLoadedMsg{post: post, replies: replies, err: err}
	}
}

func (m appModel) cmdPublish(text string, replyToID *int64) tea.Cmd {
	ctx := m.ctx
	svc := m.posts
	return func() tea.Msg {
		post, err := svc.Publish(ctx, text, replyToID)
		return postPublishedMsg{post: post, err: err}
	}
}

func (m appModel) cmdToggleLike(post models.Post) tea.Cmd {
	if flag(post.UserLiked) {
		return m.cmdAction(post.ID, actionUnlike)
	}
	return m.cmdAction(post.ID, actionLike)
}

func (m appModel) cmdAction(postID int64, action postAction) tea.Cmd {
	ctx := m.ctx
	svc := m.posts
	return func() tea.Msg {
		var err error
		switch action {
		case actionLike:
			err = svc.Like(ctx, postID)
		case actionUnlike:
			err = svc.Unlike(ctx, postID)
		case actionView:
			err = svc.View(ctx, postID)
		}
		return postActionMsg{postID: postID, action: action, err: err}
	}
}

func (m appModel) cmdDelete(postID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.posts
	return func() tea.Msg {
		return postDeletedMsg{postID: postID, err: svc.Delete(ctx, postID)}
	}
}

func (m appModel) cmdServerVersion() tea.Cmd {
	ctx := m.ctx
	svc := m.posts
	return func() tea.Msg {
		version, err := svc.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// clamp keeps a cursor inside [0, n).
func clamp(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
