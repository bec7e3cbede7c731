package service

import (
	"context"

	"github.com/MKhiriev/gophertalk/models"
)

// ClientAuthService signs the terminal user in and keeps the session on disk.
type ClientAuthService interface {
	// Register creates the account and saves the returned session.
	Register(ctx context.Context, req models.RegisterRequest) (models.Session, error)

	// Login authenticates and saves the returned session.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// Restore loads the saved session, if any, so that the user does not have
	// to log in again. Returns ErrNotLoggedIn when nothing is saved.
	Restore(ctx context.Context) (models.Session, error)

	// Logout forgets the saved session.
	Logout(ctx context.Context) error
}

// ClientFeedService reads and writes posts for the signed-in user. Every
// call refreshes the token pair once when the server answers 401.
type ClientFeedService interface {
	Feed(ctx context.Context, filter models.PostFilter) ([]models.Post, error)

	// Thread returns the post and one page of its replies, oldest first.
	Thread(ctx context.Context, postID int64, page models.Pagination) (models.Post, []models.Post, error)

	Publish(ctx context.Context, text string, replyToID *int64) (models.Post, error)
	View(ctx context.Context, postID int64) error
	Like(ctx context.Context, postID int64) error
	Unlike(ctx context.Context, postID int64) error
	Delete(ctx context.Context, postID int64) error

	ServerVersion(ctx context.Context) (string, error)
}
