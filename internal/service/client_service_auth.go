package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/gophertalk/internal/adapter"
	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/internal/store"
	"github.com/MKhiriev/gophertalk/models"
)

type clientAuthService struct {
	session *clientSession
}

func NewClientAuthService(sessions store.LocalSessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		session: &clientSession{adapter: serverAdapter, sessions: sessions, logger: logger},
	}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.Session, error) {
	pair, err := a.session.adapter.Register(ctx, req)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
	}

	return a.session.save(ctx, req.UserName, pair)
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	pair, err := a.session.adapter.Login(ctx, req)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	return a.session.save(ctx, req.UserName, pair)
}

func (a *clientAuthService) Restore(ctx context.Context) (models.Session, error) {
	session, err := a.session.sessions.GetSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.Session{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.Session{}, err
	}

	a.session.adapter.SetTokens(session.Tokens())
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.session.adapter.SetTokens(models.TokenPair{})
	return a.session.sessions.DeleteSession(ctx)
}
