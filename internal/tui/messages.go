package tui

import "github.com/MKhiriev/gophertalk/models"

type authDoneMsg struct {
	session models.Session
}

type authFailedMsg struct {
	err error
}

type feedLoadedMsg struct {
	posts []models.Post
	err   error
}

type threadLoadedMsg struct {
	post    models.Post
	replies []models.Post
	err     error
}

type postPublishedMsg struct {
	post models.Post
	err  error
}

type postAction int

const (
	actionLike postAction = iota
	actionUnlike
	actionView
)

type postActionMsg struct {
	postID int64
	action postAction
	err    error
}

type postDeletedMsg struct {
	postID int64
	err    error
}

type serverVersionMsg struct {
	version string
	err     error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
