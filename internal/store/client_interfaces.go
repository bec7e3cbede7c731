package store

import (
	"context"

	"github.com/MKhiriev/gophertalk/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository keeps the signed-in user of the terminal client.
// At most one session is stored at a time.
type LocalSessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context) (models.Session, error)
	DeleteSession(ctx context.Context) error
}
