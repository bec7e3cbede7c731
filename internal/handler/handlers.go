// Package handler groups the transport handlers of the server.
package handler

import (
	"github.com/MKhiriev/gophertalk/internal/config"
	"github.com/MKhiriev/gophertalk/internal/handler/grpc"
	"github.com/MKhiriev/gophertalk/internal/handler/http"
	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/internal/service"
)

// Handlers holds one handler per enabled transport. A transport is enabled
// by a non-empty address in config.Server.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
