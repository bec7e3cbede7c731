package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a user and returns its authentication view.
//
// Error handling:
//   - unique_violation on the user name index → [ErrUserAlreadyExists].
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.NewUser) (models.AuthUser, error) {
	log := logger.FromContext(ctx)

	var created models.AuthUser
	err := r.db.QueryRowContext(ctx, createUser, user.UserName, user.FirstName, user.LastName, user.PasswordHash).
		Scan(&created.ID, &created.UserName, &created.PasswordHash, &created.Status)
	if err != nil {
		if isUniqueViolation(err, constraintUniqueUserName) {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("user_name", user.UserName).Msg("user name taken")
			return models.AuthUser{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.AuthUser{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByUserName returns the credentials of a live user.
func (r *userRepository) FindUserByUserName(ctx context.Context, userName string) (models.AuthUser, error) {
	log := logger.FromContext(ctx)

	var found models.AuthUser
	err := r.db.QueryRowContext(ctx, findUserByUserName, userName).
		Scan(&found.ID, &found.UserName, &found.PasswordHash, &found.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AuthUser{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUserName").Msg("error selecting user")
		return models.AuthUser{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// GetUsers returns a page of live users ordered by id.
func (r *userRepository) GetUsers(ctx context.Context, page models.Pagination) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersQuery(ctx, page)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUsers").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUsers").Msg("error selecting users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := scanUser(rows, &u); err != nil {
			log.Err(err).Str("func", "*userRepository.GetUsers").Msg("error scanning user")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.GetUsers").Msg("error iterating users")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// GetUserByID returns a live user.
func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var u models.User
	err := scanUser(r.db.QueryRowContext(ctx, getUserByID, userID), &u)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return u, nil
}

// UpdateUser applies a partial update and returns the new state.
func (r *userRepository) UpdateUser(ctx context.Context, userID int64, update models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(ctx, userID, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var u models.User
	err = scanUser(r.db.QueryRowContext(ctx, query, args...), &u)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case isUniqueViolation(err, constraintUniqueUserName):
		return models.User{}, ErrUserAlreadyExists
	case err != nil:
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return u, nil
}

// DeleteUser soft-deletes a live user.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, u *models.User) error {
	return row.Scan(&u.ID, &u.UserName, &u.FirstName, &u.LastName, &u.Status, &u.CreatedAt, &u.UpdatedAt)
}
