package store

import "github.com/MKhiriev/gophertalk/internal/logger"

// Repositories groups every server-side repository backed by one database.
type Repositories struct {
	UserRepository UserRepository
	PostRepository PostRepository
	HealthChecker  HealthChecker
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, log),
		PostRepository: NewPostRepository(db, log),
		HealthChecker:  db,
	}
}
