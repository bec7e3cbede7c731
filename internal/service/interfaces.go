package service

import (
	"context"

	"github.com/MKhiriev/gophertalk/models"
)

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.TokenPair, error)
	Login(ctx context.Context, req models.LoginRequest) (models.TokenPair, error)
	// Refresh issues a new pair for a valid refresh token.
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)
	// ParseAccessToken verifies an access token and returns its claims.
	ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetUsers(ctx context.Context, page models.Pagination) ([]models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
	// UpdateUser and DeleteUser return ErrForbidden unless callerID == userID.
	UpdateUser(ctx context.Context, callerID, userID int64, update models.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, callerID, userID int64) error
}

type PostService interface {
	CreatePost(ctx context.Context, post models.CreatePostRequest) (models.Post, error)
	GetPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	GetPostByID(ctx context.Context, postID, userID int64) (models.Post, error)
	DeletePost(ctx context.Context, postID, ownerID int64) error
	ViewPost(ctx context.Context, action models.PostAction) error
	LikePost(ctx context.Context, action models.PostAction) error
	UnlikePost(ctx context.Context, action models.PostAction) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// Ping reports whether the database is reachable.
	Ping(ctx context.Context) error
}

// AuthServiceWrapper, UserServiceWrapper and PostServiceWrapper decorate a
// service with additional behavior such as validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

type PostServiceWrapper interface {
	Wrap(PostService) PostService
}
