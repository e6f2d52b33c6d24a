package store

import "github.com/MKhiriev/go-cred-vault/internal/logger"

// Storages bundles all server-side repositories behind one constructor so
// the application wiring stays flat.
type Storages struct {
	UserRepository       UserRepository
	CredentialRepository CredentialRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		CredentialRepository: NewCredentialRepository(db, log),
	}
}
