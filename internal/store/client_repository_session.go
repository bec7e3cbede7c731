package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/models"
)

// ErrLocalSessionNotFound is returned when nobody is signed in on this device.
var ErrLocalSessionNotFound = errors.New("local session not found")

type localSessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalSessionRepository returns a [LocalSessionRepository] over the
// client's SQLite database.
func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{db: db, logger: logger}
}

func (r *localSessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	if session.UpdatedAt.IsZero() {
		session.UpdatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, saveSession,
		session.UserID, session.UserName, session.AccessToken, session.RefreshToken, session.UpdatedAt)
	if err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localSessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	var s models.Session
	err := r.db.QueryRowContext(ctx, getSession).
		Scan(&s.UserID, &s.UserName, &s.AccessToken, &s.RefreshToken, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.GetSession").Msg("error reading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return s, nil
}

func (r *localSessionRepository) DeleteSession(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteSession); err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
