package http

import (
	"github.com/MKhiriev/go-cred-vault/internal/logger"
	"github.com/MKhiriev/go-cred-vault/internal/service"
	"github.com/MKhiriev/go-cred-vault/internal/store"
)

type Handler struct {
	services   *service.Services
	classifier store.ErrorClassificator

	logger *logger.Logger
}

// NewHandler wires the REST handlers to the service layer. The classifier
// decides whether a failed store operation gets a 503 or a 500.
func NewHandler(services *service.Services, classifier store.ErrorClassificator, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		classifier: classifier,
		logger:     logger,
	}
}
