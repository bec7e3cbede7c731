package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when a live user already owns the
	// requested user name.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when the user does not exist or is deleted.
	ErrUserNotFound = errors.New("user not found")

	// ErrPostNotFound is returned when the post does not exist, is deleted, or
	// (for deletion) is not owned by the caller.
	ErrPostNotFound = errors.New("post not found")

	// ErrReplyToPostNotFound is returned when a new post replies to a post
	// that does not exist or is deleted.
	ErrReplyToPostNotFound = errors.New("reply to post doesn't exist")

	// ErrPostAlreadyLiked is returned on a second like of the same post by
	// the same user (pk__likes).
	ErrPostAlreadyLiked = errors.New("post already liked")

	// ErrPostAlreadyViewed is returned on a second view of the same post by
	// the same user (pk__views).
	ErrPostAlreadyViewed = errors.New("post already viewed")

	// ErrLikeNotFound is returned when removing a like that does not exist.
	ErrLikeNotFound = errors.New("like not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or a statement
	// with a RETURNING clause fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// without result rows fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
