package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/models"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost inserts a post. The returned post carries no counters.
func (r *postRepository) CreatePost(ctx context.Context, post models.CreatePostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	var (
		created models.Post
		replyTo sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, createPost, post.Text, post.UserID, post.ReplyToID).
		Scan(&created.ID, &created.Text, &created.UserID, &replyTo, &created.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows), isForeignKeyViolation(err, constraintPostsReplyTo):
		return models.Post{}, ErrReplyToPostNotFound
	case err != nil:
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error inserting post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	created.ReplyToID = nullInt64Ptr(replyTo)

	return created, nil
}

// GetPosts returns one page of the feed or of a thread.
func (r *postRepository) GetPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostsQuery(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPosts").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPosts").Msg("error selecting posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			log.Err(err).Str("func", "*postRepository.GetPosts").Msg("error scanning post")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.GetPosts").Msg("error iterating posts")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// GetPostByID returns a live post with counters computed for userID.
func (r *postRepository) GetPostByID(ctx context.Context, postID, userID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostByIDQuery(ctx, postID, userID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPostByID").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	p, err := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPostByID").Msg("error selecting post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return p, nil
}

// DeletePost soft-deletes a live post owned by ownerID.
func (r *postRepository) DeletePost(ctx context.Context, postID, ownerID int64) error {
	return r.execAffectingOne(ctx, "*postRepository.DeletePost", deletePost, ErrPostNotFound, postID, ownerID)
}

// ViewPost records that the user has seen the post.
func (r *postRepository) ViewPost(ctx context.Context, action models.PostAction) error {
	err := r.execAffectingOne(ctx, "*postRepository.ViewPost", viewPost, ErrPostNotFound, action.PostID, action.UserID)
	if isUniqueViolation(err, constraintViewsPK) {
		return ErrPostAlreadyViewed
	}
	return err
}

// LikePost records a like of the user.
func (r *postRepository) LikePost(ctx context.Context, action models.PostAction) error {
	err := r.execAffectingOne(ctx, "*postRepository.LikePost", likePost, ErrPostNotFound, action.PostID, action.UserID)
	if isUniqueViolation(err, constraintLikesPK) {
		return ErrPostAlreadyLiked
	}
	return err
}

// UnlikePost removes a like of the user.
func (r *postRepository) UnlikePost(ctx context.Context, action models.PostAction) error {
	return r.execAffectingOne(ctx, "*postRepository.UnlikePost", unlikePost, ErrLikeNotFound, action.PostID, action.UserID)
}

// execAffectingOne runs a statement and returns notFound when it changed no
// rows. Driver errors are wrapped with [ErrExecutingStatement] and keep the
// original error in the chain for constraint inspection.
func (r *postRepository) execAffectingOne(ctx context.Context, funcName, query string, notFound error, args ...any) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}

func scanPost(row rowScanner) (models.Post, error) {
	var (
		p       models.Post
		author  models.PostAuthor
		replyTo sql.NullInt64
		likes   int64
		views   int64
		replies int64
		liked   bool
		viewed  bool
	)

	err := row.Scan(
		&p.ID, &p.Text, &replyTo, &p.CreatedAt,
		&author.ID, &author.UserName, &author.FirstName, &author.LastName,
		&likes, &views, &replies, &liked, &viewed,
	)
	if err != nil {
		return models.Post{}, err
	}

	p.ReplyToID = nullInt64Ptr(replyTo)
	p.UserID = author.ID
	p.User = &author
	p.LikesCount = &likes
	p.ViewsCount = &views
	p.RepliesCount = &replies
	p.UserLiked = &liked
	p.UserViewed = &viewed

	return p, nil
}

func nullInt64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}
