package service

import (
	"github.com/MKhiriev/go-cred-vault/internal/config"
	"github.com/MKhiriev/go-cred-vault/internal/logger"
	"github.com/MKhiriev/go-cred-vault/internal/store"
)

type Services struct {
	AuthService       AuthService
	CredentialService CredentialService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	credentials := NewCredentialService(storages.CredentialRepository, logger)
	credentials = NewCredentialValidationService().Wrap(credentials)

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg.Auth, logger),
		CredentialService: credentials,
	}
}
