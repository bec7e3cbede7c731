package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/gophertalk/internal/adapter"
	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/internal/store"
	"github.com/MKhiriev/gophertalk/internal/utils"
	"github.com/MKhiriev/gophertalk/models"
)

// clientSession ties the adapter's in-memory tokens to the saved session.
type clientSession struct {
	adapter  adapter.ServerAdapter
	sessions store.LocalSessionRepository
	logger   *logger.Logger
}

// save stores pair for userName and returns the resulting session.
func (s *clientSession) save(ctx context.Context, userName string, pair models.TokenPair) (models.Session, error) {
	userID, err := utils.ParseUserIDFromJWT(pair.AccessToken)
	if err != nil {
		return models.Session{}, fmt.Errorf("read user id from access token: %w", err)
	}

	session := models.Session{
		UserID:       userID,
		UserName:     userName,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
	if err = s.sessions.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	return session, nil
}

// withRefresh runs call and, when the server rejects the access token,
// refreshes the pair once and runs call again.
func (s *clientSession) withRefresh(ctx context.Context, call func() error) error {
	err := call()
	if !errors.Is(err, adapter.ErrUnauthorized) {
		return err
	}

	pair, refreshErr := s.adapter.Refresh(ctx)
	if refreshErr != nil {
		s.logger.Err(refreshErr).Msg("token refresh failed")
		return ErrSessionExpired
	}

	current, getErr := s.sessions.GetSession(ctx)
	if getErr == nil {
		current.AccessToken = pair.AccessToken
		current.RefreshToken = pair.RefreshToken
		current.UpdatedAt = time.Now().UTC()
		if saveErr := s.sessions.SaveSession(ctx, current); saveErr != nil {
			s.logger.Err(saveErr).Msg("refreshed session not saved")
		}
	}

	return call()
}
