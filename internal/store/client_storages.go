package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/gophertalk/internal/logger"
)

// ClientStorages groups the storage the terminal client owns locally.
type ClientStorages struct {
	SessionRepository LocalSessionRepository

	db *DB
}

// NewClientStorages opens (creating if needed) the SQLite file at path.
func NewClientStorages(ctx context.Context, path string, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, path, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewLocalSessionRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the underlying database.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
