package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cred-vault/internal/adapter"
	"github.com/MKhiriev/go-cred-vault/internal/config"
	"github.com/MKhiriev/go-cred-vault/internal/logger"
	"github.com/MKhiriev/go-cred-vault/internal/service"
	"github.com/MKhiriev/go-cred-vault/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp() (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	log := logger.NewClientLogger("vault-client")

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.ServerURL,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	svcs := service.NewClientServices(serverAdapter)

	ui, err := tui.New(svcs, log)
	if err != nil {
		return nil, fmt.Errorf("error create tui: %w", err)
	}

	return &App{services: svcs, tui: ui, logger: log}, nil
}

// Run drives the full client lifecycle: login, vault loop, and on logout
// back to login again. A plain quit from either flow ends the process.
func (a *App) Run() error {
	ctx := context.Background()

	token, err := a.tui.LoginFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	a.logger.Info().Int64("user_id", token.UserID).Msg("user authenticated")

	logout, err := a.tui.MainLoop(ctx, token)
	if err != nil {
		return err
	}
	if logout {
		a.services.Auth.Logout()
		a.logger.Info().Int64("user_id", token.UserID).Msg("user logged out")
		return a.Run()
	}

	return nil
}
