package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/internal/service"
	"github.com/MKhiriev/gophertalk/internal/tui"
	"github.com/MKhiriev/gophertalk/models"
)

type App struct {
	auth   service.ClientAuthService
	ui     UI
	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) *App {
	return &App{auth: services.AuthService, ui: ui, logger: logger}
}

func (a *App) Run(ctx context.Context) error {
	for {
		session, err := a.session(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		logout, err := a.ui.MainLoop(ctx, session)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		if err = a.auth.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		a.logger.Info().Int64("user_id", session.UserID).Msg("logged out")
	}
}

// session returns the saved session or asks the user to log in.
func (a *App) session(ctx context.Context) (models.Session, error) {
	session, err := a.auth.Restore(ctx)
	if err == nil {
		a.logger.Debug().Int64("user_id", session.UserID).Msg("session restored")
		return session, nil
	}
	if !errors.Is(err, service.ErrNotLoggedIn) {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	return a.ui.LoginFlow(ctx)
}
