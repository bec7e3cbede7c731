// Package grpc exposes the standard gRPC health checking service
// (grpc.health.v1.Health) for the server.
package grpc

import (
	"context"

	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the name reported by Check besides the empty (whole
// server) name.
const ServiceName = "gophertalk"

// Handler answers health checks with the state of the database.
//
// Watch and List are served by the embedded unimplemented server.
type Handler struct {
	grpc_health_v1.UnimplementedHealthServer

	// services provides the database ping.
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	grpc_health_v1.RegisterHealthServer(s, h)
}

// Check reports SERVING while the database answers a ping and NOT_SERVING
// otherwise. Unknown service names get codes.NotFound.
func (h *Handler) Check(ctx context.Context, req *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	if name := req.GetService(); name != "" && name != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", name)
	}

	if err := h.services.AppInfoService.Ping(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("health check: database unavailable")
		return &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_NOT_SERVING}, nil
	}

	return &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_SERVING}, nil
}
