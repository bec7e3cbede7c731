package service

import (
	"github.com/MKhiriev/gophertalk/internal/config"
	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	PostService    PostService
	AppInfoService AppInfoService
}

// NewServices wires every service to its repository and wraps it with
// request validation.
func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, repositories.HealthChecker, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService: NewAuthValidationService().Wrap(
			NewAuthService(repositories.UserRepository, cfg, logger),
		),
		UserService: NewUserValidationService().Wrap(
			NewUserService(repositories.UserRepository, cfg.PasswordHashCost, logger),
		),
		PostService: NewPostValidationService().Wrap(
			NewPostService(repositories.PostRepository, logger),
		),
		AppInfoService: appInfo,
	}, nil
}
