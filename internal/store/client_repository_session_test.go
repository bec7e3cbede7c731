package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClientStorages(t *testing.T, path string) *ClientStorages {
	t.Helper()

	s, err := NewClientStorages(context.Background(), path, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestLocalSession_EmptyStore(t *testing.T) {
	s := newTestClientStorages(t, "")

	_, err := s.SessionRepository.GetSession(context.Background())
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestLocalSession_SaveOverwriteDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestClientStorages(t, ":memory:").SessionRepository

	require.NoError(t, repo.SaveSession(ctx, models.Session{
		UserID: 1, UserName: "gopher", AccessToken: "a1", RefreshToken: "r1",
	}))

	got, err := repo.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "gopher", got.UserName)
	assert.Equal(t, models.TokenPair{AccessToken: "a1", RefreshToken: "r1"}, got.Tokens())
	assert.False(t, got.UpdatedAt.IsZero())

	// a second save replaces the first one
	require.NoError(t, repo.SaveSession(ctx, models.Session{
		UserID: 2, UserName: "rustacean", AccessToken: "a2", RefreshToken: "r2", UpdatedAt: time.Now().UTC(),
	}))
	got, err = repo.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.UserID)
	assert.Equal(t, "a2", got.AccessToken)

	require.NoError(t, repo.DeleteSession(ctx))
	_, err = repo.GetSession(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestLocalSession_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.db")

	first, err := NewClientStorages(ctx, path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.SessionRepository.SaveSession(ctx, models.Session{
		UserID: 3, UserName: "gopher", AccessToken: "a", RefreshToken: "r",
	}))
	require.NoError(t, first.Close())

	second := newTestClientStorages(t, path)
	got, err := second.SessionRepository.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.UserID)
}
