package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/gophertalk/internal/adapter"
	"github.com/MKhiriev/gophertalk/internal/client"
	"github.com/MKhiriev/gophertalk/internal/config"
	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/internal/service"
	"github.com/MKhiriev/gophertalk/internal/store"
	"github.com/MKhiriev/gophertalk/internal/tui"
	"github.com/MKhiriev/gophertalk/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		// the log file location is part of the config
		logger.NewLogger("gophertalk-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("gophertalk-client", cfg.LogFile)
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.SessionDB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, serverAdapter, log)
	ui := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	if err = client.NewApp(services, ui, log).Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
	}
}
