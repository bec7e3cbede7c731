package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/gophertalk/internal/config"
	"github.com/MKhiriev/gophertalk/internal/handler"
	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/internal/server"
	"github.com/MKhiriev/gophertalk/internal/service"
	"github.com/MKhiriev/gophertalk/internal/store"
	"github.com/MKhiriev/gophertalk/internal/telemetry"
	"github.com/MKhiriev/gophertalk/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("gophertalk-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx := context.Background()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting up tracing")
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Err(err).Msg("error flushing traces")
		}
	}()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting database")
	}
	defer db.Close()

	if cfg.Storage.DB.MigrateOnStart {
		if err = db.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("error migrating database")
		}
	}

	repositories := store.NewRepositories(db, log)

	services, err := service.NewServices(repositories, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
