package handler

import (
	"github.com/MKhiriev/go-cred-vault/internal/config"
	"github.com/MKhiriev/go-cred-vault/internal/handler/http"
	"github.com/MKhiriev/go-cred-vault/internal/logger"
	"github.com/MKhiriev/go-cred-vault/internal/service"
	"github.com/MKhiriev/go-cred-vault/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, classifier store.ErrorClassificator, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, classifier, logger),
	}, nil
}
