package store

import (
	"context"
	"strings"

	"github.com/MKhiriev/gophertalk/models"
	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	createUser = `INSERT INTO users (user_name, first_name, last_name, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_name, password_hash, status;`

	findUserByUserName = `SELECT id, user_name, password_hash, status
		FROM users
		WHERE user_name = $1 AND deleted_at IS NULL;`

	getUserByID = `SELECT id, user_name, first_name, last_name, status, created_at, updated_at
		FROM users
		WHERE id = $1 AND deleted_at IS NULL;`

	deleteUser = `UPDATE users
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL;`

	// createPost inserts nothing when reply_to_id points to a missing or
	// deleted post.
	createPost = `INSERT INTO posts (text, user_id, reply_to_id)
		SELECT $1::TEXT, $2::BIGINT, $3::BIGINT
		WHERE $3::BIGINT IS NULL
		   OR EXISTS (SELECT 1 FROM posts WHERE id = $3::BIGINT AND deleted_at IS NULL)
		RETURNING id, text, user_id, reply_to_id, created_at;`

	deletePost = `UPDATE posts
		SET deleted_at = NOW()
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL;`

	// viewPost and likePost insert nothing when the post is missing or deleted.
	viewPost = `INSERT INTO views (post_id, user_id)
		SELECT id, $2::BIGINT FROM posts WHERE id = $1 AND deleted_at IS NULL;`

	likePost = `INSERT INTO likes (post_id, user_id)
		SELECT id, $2::BIGINT FROM posts WHERE id = $1 AND deleted_at IS NULL;`

	unlikePost = `DELETE FROM likes
		WHERE post_id = $1 AND user_id = $2;`
)

const postCountersCTE = `WITH likes_count AS (
		SELECT post_id, COUNT(*) AS likes_count FROM likes GROUP BY post_id
	),
	views_count AS (
		SELECT post_id, COUNT(*) AS views_count FROM views GROUP BY post_id
	),
	replies_count AS (
		SELECT reply_to_id, COUNT(*) AS replies_count
		FROM posts
		WHERE reply_to_id IS NOT NULL AND deleted_at IS NULL
		GROUP BY reply_to_id
	)`

var userColumns = []string{
	"id", "user_name", "first_name", "last_name", "status", "created_at", "updated_at",
}

var postColumns = []string{
	"p.id",
	"p.text",
	"p.reply_to_id",
	"p.created_at",
	"u.id AS user_id",
	"u.user_name",
	"u.first_name",
	"u.last_name",
	"COALESCE(lc.likes_count, 0) AS likes_count",
	"COALESCE(vc.views_count, 0) AS views_count",
	"COALESCE(rc.replies_count, 0) AS replies_count",
	"(l.user_id IS NOT NULL) AS user_liked",
	"(v.user_id IS NOT NULL) AS user_viewed",
}

// selectPostsBase selects live posts with their counters and the like/view
// flags of userID.
func selectPostsBase(userID int64) sq.SelectBuilder {
	return psql.Select(postColumns...).
		Prefix(postCountersCTE).
		From("posts p").
		Join("users u ON p.user_id = u.id").
		LeftJoin("likes_count lc ON p.id = lc.post_id").
		LeftJoin("views_count vc ON p.id = vc.post_id").
		LeftJoin("replies_count rc ON p.id = rc.reply_to_id").
		LeftJoin("likes l ON l.post_id = p.id AND l.user_id = ?", userID).
		LeftJoin("views v ON v.post_id = p.id AND v.user_id = ?", userID).
		Where("p.deleted_at IS NULL")
}

// buildSelectPostsQuery builds the feed query. Without ReplyToID only
// top-level posts are returned, newest first; with it the replies of that
// post are returned, oldest first.
func buildSelectPostsQuery(ctx context.Context, filter models.PostFilter) (string, []any, error) {
	q := selectPostsBase(filter.UserID)

	if filter.Search != nil && *filter.Search != "" {
		q = q.Where(sq.ILike{"p.text": "%" + escapeLike(*filter.Search) + "%"})
	}

	if filter.OwnerID != nil {
		q = q.Where(sq.Eq{"p.user_id": *filter.OwnerID})
	}

	if filter.ReplyToID != nil {
		q = q.Where(sq.Eq{"p.reply_to_id": *filter.ReplyToID}).
			OrderBy("p.created_at ASC", "p.id ASC")
	} else {
		q = q.Where("p.reply_to_id IS NULL").
			OrderBy("p.created_at DESC", "p.id DESC")
	}

	return q.
		Offset(uint64(max(filter.Offset, 0))).
		Limit(uint64(max(filter.Limit, 0))).
		ToSql()
}

func buildSelectPostByIDQuery(ctx context.Context, postID, userID int64) (string, []any, error) {
	return selectPostsBase(userID).
		Where(sq.Eq{"p.id": postID}).
		ToSql()
}

func buildSelectUsersQuery(ctx context.Context, page models.Pagination) (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		Where("deleted_at IS NULL").
		OrderBy("id ASC").
		Offset(uint64(max(page.Offset, 0))).
		Limit(uint64(max(page.Limit, 0))).
		ToSql()
}

// buildUpdateUserQuery sets only the non-nil fields of update and always
// bumps updated_at.
func buildUpdateUserQuery(ctx context.Context, userID int64, update models.UpdateUserRequest) (string, []any, error) {
	q := psql.Update("users")

	if update.PasswordHash != nil {
		q = q.Set("password_hash", *update.PasswordHash)
	}
	if update.UserName != nil {
		q = q.Set("user_name", *update.UserName)
	}
	if update.FirstName != nil {
		q = q.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		q = q.Set("last_name", *update.LastName)
	}

	return q.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID}).
		Where("deleted_at IS NULL").
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
