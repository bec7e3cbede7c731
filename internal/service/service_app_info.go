package service

import (
	"context"

	"github.com/MKhiriev/gophertalk/internal/config"
	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/internal/store"
)

type appInfoService struct {
	appVersion string
	health     store.HealthChecker

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, health store.HealthChecker, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		health:     health,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Ping(ctx context.Context) error {
	if err := s.health.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database ping failed")
		return err
	}
	return nil
}
