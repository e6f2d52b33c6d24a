package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cred-vault/internal/adapter"
	"github.com/MKhiriev/go-cred-vault/models"
)

// clientAuthService is the concrete implementation of ClientAuthService.
// The bearer token lives inside the adapter; this service only shapes the
// requests and normalises errors.
type clientAuthService struct {
	adapter adapter.ServerAdapter
}

// NewClientAuthService constructs a ClientAuthService bound to the given
// transport adapter.
func NewClientAuthService(serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter}
}

// Register implements ClientAuthService.
func (c *clientAuthService) Register(ctx context.Context, login, password, name string) (models.Token, error) {
	if login == "" || password == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	token, err := c.adapter.Register(ctx, models.RegisterRequest{Login: login, Password: password, Name: name})
	if err != nil {
		return models.Token{}, fmt.Errorf("register: %w", mapAdapterError(err))
	}

	return token, nil
}

// Login implements ClientAuthService.
func (c *clientAuthService) Login(ctx context.Context, login, password string) (models.Token, error) {
	if login == "" || password == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	token, err := c.adapter.Login(ctx, models.LoginRequest{Login: login, Password: password})
	if err != nil {
		return models.Token{}, fmt.Errorf("login: %w", mapAdapterError(err))
	}

	return token, nil
}

// Logout implements ClientAuthService. It clears the stored bearer token;
// the caller is responsible for wiping its session master key.
func (c *clientAuthService) Logout() {
	c.adapter.SetToken("")
}
