package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPostRepo(t *testing.T) (*postRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	return &postRepository{db: &DB{DB: db, logger: l}, logger: l}, mock
}

var postRowColumns = []string{
	"id", "text", "reply_to_id", "created_at",
	"user_id", "user_name", "first_name", "last_name",
	"likes_count", "views_count", "replies_count", "user_liked", "user_viewed",
}

// ── CreatePost ───────────────────────────────────────────────────────────────

func TestCreatePost_TopLevel(t *testing.T) {
	repo, mock := newTestPostRepo(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO posts").
		WithArgs("hello", int64(1), nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "text", "user_id", "reply_to_id", "created_at"}).
			AddRow(10, "hello", 1, nil, now))

	post, err := repo.CreatePost(context.Background(), models.CreatePostRequest{Text: "hello", UserID: 1})
	require.NoError(t, err)

	assert.Equal(t, int64(10), post.ID)
	assert.Equal(t, int64(1), post.UserID)
	assert.Nil(t, post.ReplyToID)
	assert.Nil(t, post.LikesCount)
	assert.Nil(t, post.User)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePost_Reply(t *testing.T) {
	repo, mock := newTestPostRepo(t)
	replyTo := int64(3)

	mock.ExpectQuery("INSERT INTO posts").
		WithArgs("hi", int64(1), replyTo).
		WillReturnRows(sqlmock.NewRows([]string{"id", "text", "user_id", "reply_to_id", "created_at"}).
			AddRow(11, "hi", 1, replyTo, time.Now()))

	post, err := repo.CreatePost(context.Background(), models.CreatePostRequest{Text: "hi", UserID: 1, ReplyToID: &replyTo})
	require.NoError(t, err)
	require.NotNil(t, post.ReplyToID)
	assert.Equal(t, replyTo, *post.ReplyToID)
}

func TestCreatePost_ReplyToMissingPost(t *testing.T) {
	replyTo := int64(404)

	t.Run("no row inserted", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)
		mock.ExpectQuery("INSERT INTO posts").
			WillReturnRows(sqlmock.NewRows([]string{"id", "text", "user_id", "reply_to_id", "created_at"}))

		_, err := repo.CreatePost(context.Background(), models.CreatePostRequest{Text: "hi", UserID: 1, ReplyToID: &replyTo})
		assert.ErrorIs(t, err, ErrReplyToPostNotFound)
	})

	t.Run("foreign key violation", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)
		mock.ExpectQuery("INSERT INTO posts").
			WillReturnError(pgConstraintError(pgerrcode.ForeignKeyViolation, constraintPostsReplyTo))

		_, err := repo.CreatePost(context.Background(), models.CreatePostRequest{Text: "hi", UserID: 1, ReplyToID: &replyTo})
		assert.ErrorIs(t, err, ErrReplyToPostNotFound)
	})
}

func TestCreatePost_DBError(t *testing.T) {
	repo, mock := newTestPostRepo(t)
	mock.ExpectQuery("INSERT INTO posts").WillReturnError(errors.New("connection reset"))

	_, err := repo.CreatePost(context.Background(), models.CreatePostRequest{Text: "hi", UserID: 1})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── GetPosts / GetPostByID ───────────────────────────────────────────────────

func TestGetPosts_ScansReadModel(t *testing.T) {
	repo, mock := newTestPostRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows(postRowColumns).
		AddRow(2, "second", nil, now, 5, "gopher", "Go", "Pher", 3, 7, 1, true, false).
		AddRow(1, "first", nil, now.Add(-time.Minute), 6, "rustacean", "", "", 0, 0, 0, false, true)

	mock.ExpectQuery("WITH likes_count AS").
		WithArgs(int64(5), int64(5)).
		WillReturnRows(rows)

	posts, err := repo.GetPosts(context.Background(), models.PostFilter{
		UserID:     5,
		Pagination: models.Pagination{Limit: 100},
	})
	require.NoError(t, err)
	require.Len(t, posts, 2)

	first := posts[0]
	assert.Equal(t, int64(2), first.ID)
	assert.Equal(t, int64(5), first.UserID)
	require.NotNil(t, first.User)
	assert.Equal(t, "gopher", first.User.UserName)
	assert.Equal(t, int64(3), *first.LikesCount)
	assert.Equal(t, int64(7), *first.ViewsCount)
	assert.Equal(t, int64(1), *first.RepliesCount)
	assert.True(t, *first.UserLiked)
	assert.False(t, *first.UserViewed)

	assert.True(t, *posts[1].UserViewed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPosts_PassesFilterArgs(t *testing.T) {
	repo, mock := newTestPostRepo(t)
	search := "go"
	owner := int64(2)
	replyTo := int64(9)

	mock.ExpectQuery("WITH likes_count AS").
		WithArgs(int64(5), int64(5), "%go%", owner, replyTo).
		WillReturnRows(sqlmock.NewRows(postRowColumns))

	posts, err := repo.GetPosts(context.Background(), models.PostFilter{
		UserID:     5,
		Search:     &search,
		OwnerID:    &owner,
		ReplyToID:  &replyTo,
		Pagination: models.Pagination{Limit: 10},
	})
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.NotNil(t, posts)
}

func TestGetPosts_HugeLimit(t *testing.T) {
	repo, mock := newTestPostRepo(t)
	mock.ExpectQuery("WITH likes_count AS").
		WillReturnRows(sqlmock.NewRows(postRowColumns).
			AddRow(1, "only", nil, time.Now(), 5, "gopher", "", "", 0, 0, 0, false, false))

	var posts []models.Post
	var err error
	require.NotPanics(t, func() {
		posts, err = repo.GetPosts(context.Background(), models.PostFilter{
			UserID:     5,
			Pagination: models.Pagination{Limit: 1 << 50},
		})
	})
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestGetPosts_QueryError(t *testing.T) {
	repo, mock := newTestPostRepo(t)
	mock.ExpectQuery("WITH likes_count AS").WillReturnError(errors.New("boom"))

	_, err := repo.GetPosts(context.Background(), models.PostFilter{UserID: 1, Pagination: models.Pagination{Limit: 1}})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetPosts_ScanError(t *testing.T) {
	repo, mock := newTestPostRepo(t)
	mock.ExpectQuery("WITH likes_count AS").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.GetPosts(context.Background(), models.PostFilter{UserID: 1, Pagination: models.Pagination{Limit: 1}})
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestGetPostByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)
		replyTo := int64(1)
		mock.ExpectQuery("WITH likes_count AS").
			WithArgs(int64(5), int64(5), int64(2)).
			WillReturnRows(sqlmock.NewRows(postRowColumns).
				AddRow(2, "reply", replyTo, time.Now(), 5, "gopher", "", "", 0, 1, 0, false, true))

		post, err := repo.GetPostByID(context.Background(), 2, 5)
		require.NoError(t, err)
		require.NotNil(t, post.ReplyToID)
		assert.Equal(t, replyTo, *post.ReplyToID)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)
		mock.ExpectQuery("WITH likes_count AS").
			WillReturnRows(sqlmock.NewRows(postRowColumns))

		_, err := repo.GetPostByID(context.Background(), 2, 5)
		assert.ErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)
		mock.ExpectQuery("WITH likes_count AS").WillReturnError(sql.ErrConnDone)

		_, err := repo.GetPostByID(context.Background(), 2, 5)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

// ── statements ───────────────────────────────────────────────────────────────

func TestPostStatements(t *testing.T) {
	action := models.PostAction{PostID: 3, UserID: 5}

	tests := []struct {
		name     string
		pattern  string
		call     func(r *postRepository) error
		affected int64
		execErr  error
		wantErr  error
	}{
		{
			name:     "delete ok",
			pattern:  "UPDATE posts SET deleted_at",
			call:     func(r *postRepository) error { return r.DeletePost(context.Background(), 3, 5) },
			affected: 1,
		},
		{
			name:    "delete not owned or missing",
			pattern: "UPDATE posts SET deleted_at",
			call:    func(r *postRepository) error { return r.DeletePost(context.Background(), 3, 5) },
			wantErr: ErrPostNotFound,
		},
		{
			name:     "view ok",
			pattern:  "INSERT INTO views",
			call:     func(r *postRepository) error { return r.ViewPost(context.Background(), action) },
			affected: 1,
		},
		{
			name:    "view missing post",
			pattern: "INSERT INTO views",
			call:    func(r *postRepository) error { return r.ViewPost(context.Background(), action) },
			wantErr: ErrPostNotFound,
		},
		{
			name:    "view twice",
			pattern: "INSERT INTO views",
			call:    func(r *postRepository) error { return r.ViewPost(context.Background(), action) },
			execErr: pgConstraintError(pgerrcode.UniqueViolation, constraintViewsPK),
			wantErr: ErrPostAlreadyViewed,
		},
		{
			name:     "like ok",
			pattern:  "INSERT INTO likes",
			call:     func(r *postRepository) error { return r.LikePost(context.Background(), action) },
			affected: 1,
		},
		{
			name:    "like twice",
			pattern: "INSERT INTO likes",
			call:    func(r *postRepository) error { return r.LikePost(context.Background(), action) },
			execErr: pgConstraintError(pgerrcode.UniqueViolation, constraintLikesPK),
			wantErr: ErrPostAlreadyLiked,
		},
		{
			name:    "like db error",
			pattern: "INSERT INTO likes",
			call:    func(r *postRepository) error { return r.LikePost(context.Background(), action) },
			execErr: errors.New("db down"),
			wantErr: ErrExecutingStatement,
		},
		{
			name:     "unlike ok",
			pattern:  "DELETE FROM likes",
			call:     func(r *postRepository) error { return r.UnlikePost(context.Background(), action) },
			affected: 1,
		},
		{
			name:    "unlike without like",
			pattern: "DELETE FROM likes",
			call:    func(r *postRepository) error { return r.UnlikePost(context.Background(), action) },
			wantErr: ErrLikeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestPostRepo(t)

			exp := mock.ExpectExec(tt.pattern).WithArgs(int64(3), int64(5))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := tt.call(repo)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
