// Package tui implements the terminal user interface of the GopherTalk
// client on top of Bubble Tea.
package tui

import (
	"context"

	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/internal/service"
	"github.com/MKhiriev/gophertalk/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}
}

// LoginFlow shows the welcome, login and sign-up screens until the user is
// authenticated. Returns ErrUserQuit when the user leaves instead.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	result, err := t.run(newLoginAppModel(ctx, t.services, t.buildInfo))
	if err != nil {
		return models.Session{}, err
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	t.logger.Info().Int64("user_id", result.session.UserID).Msg("logged in")
	return result.session, nil
}

// MainLoop runs the feed until the user quits or logs out. logout is also
// reported when the session could not be refreshed.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	result, err := t.run(newMainAppModel(ctx, t.services, t.buildInfo, session))
	if err != nil {
		return false, err
	}
	return result.logout, nil
}

func (t *TUI) run(model appModel) (appModel, error) {
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		t.logger.Err(err).Msg("tui program failed")
		return appModel{}, err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return appModel{}, tea.ErrProgramKilled
	}
	return result, nil
}
