package models

import "time"

// Post is the read model of a post. Aggregated fields (counts and the
// caller-specific flags) are nil on freshly created posts.
type Post struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	UserID    int64     `json:"user_id"`
	ReplyToID *int64    `json:"reply_to_id"`
	CreatedAt time.Time `json:"created_at"`

	LikesCount   *int64 `json:"likes_count"`
	ViewsCount   *int64 `json:"views_count"`
	RepliesCount *int64 `json:"replies_count"`
	UserLiked    *bool  `json:"user_liked"`
	UserViewed   *bool  `json:"user_viewed"`

	// User is the author of the post.
	User *PostAuthor `json:"user"`
}

// PostAuthor is the public part of the user embedded into a post.
type PostAuthor struct {
	ID        int64  `json:"id"`
	UserName  string `json:"user_name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// CreatePostRequest is the body of POST /posts.
type CreatePostRequest struct {
	Text      string `json:"text"`
	ReplyToID *int64 `json:"reply_to_id,omitempty"`

	// UserID is the author; it is taken from the access token, never from JSON.
	UserID int64 `json:"-"`
}

// PostFilter holds the criteria of GET /posts.
type PostFilter struct {
	// UserID is the caller; used to compute user_liked / user_viewed.
	UserID int64

	Search    *string
	OwnerID   *int64
	ReplyToID *int64

	Pagination
}

// PostAction identifies a single user-to-post interaction (a like or a view).
type PostAction struct {
	PostID int64
	UserID int64
}
