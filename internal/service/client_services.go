package service

import (
	"github.com/MKhiriev/gophertalk/internal/adapter"
	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/internal/store"
)

type ClientServices struct {
	AuthService ClientAuthService
	FeedService ClientFeedService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(storages.SessionRepository, serverAdapter, logger),
		FeedService: NewClientFeedService(storages.SessionRepository, serverAdapter, logger),
	}
}
