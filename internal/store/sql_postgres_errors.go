package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Constraint names declared in the migrations.
const (
	constraintLikesPK        = "pk__likes"
	constraintViewsPK        = "pk__views"
	constraintUniqueUserName = "uq__users__user_name"
	constraintPostsReplyTo   = "fk__posts__reply_to_id"
)

// postgresError returns the SQLSTATE code and the violated constraint of err,
// or empty strings when err does not come from PostgreSQL.
func postgresError(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}

	return "", ""
}

// isUniqueViolation reports whether err is a unique_violation (23505) of the
// given constraint. An empty constraint name from the server is accepted
// as a match since older servers may omit it.
func isUniqueViolation(err error, constraint string) bool {
	code, name := postgresError(err)
	return code == pgerrcode.UniqueViolation && (name == "" || name == constraint)
}

// isForeignKeyViolation reports whether err is a foreign_key_violation (23503).
func isForeignKeyViolation(err error, constraint string) bool {
	code, name := postgresError(err)
	return code == pgerrcode.ForeignKeyViolation && (name == "" || name == constraint)
}
