package store

import (
	"context"

	"github.com/MKhiriev/gophertalk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. Deleted users are invisible to
// every read method.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.NewUser) (models.AuthUser, error)
	FindUserByUserName(ctx context.Context, userName string) (models.AuthUser, error)
	GetUsers(ctx context.Context, page models.Pagination) ([]models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, update models.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// PostRepository persists posts, likes and views.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.CreatePostRequest) (models.Post, error)
	GetPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	GetPostByID(ctx context.Context, postID, userID int64) (models.Post, error)
	DeletePost(ctx context.Context, postID, ownerID int64) error
	ViewPost(ctx context.Context, action models.PostAction) error
	LikePost(ctx context.Context, action models.PostAction) error
	UnlikePost(ctx context.Context, action models.PostAction) error
}

// HealthChecker reports whether the database answers.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
