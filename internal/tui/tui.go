package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-cred-vault/internal/logger"
	"github.com/MKhiriev/go-cred-vault/internal/service"
	"github.com/MKhiriev/go-cred-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoServicesProvided = errors.New("no client services provided")

// TUI runs the terminal interface as two separate bubbletea programs: the
// auth flow, which ends with a token, and the vault loop, which ends with
// either quit or logout.
type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServicesProvided
	}
	if log == nil {
		log = logger.Nop()
	}

	return &TUI{services: services, logger: log}, nil
}

// LoginFlow shows the welcome/login/register screens and blocks until the
// user authenticates or quits. A quit returns ErrUserQuit.
func (t *TUI) LoginFlow(ctx context.Context) (models.Token, error) {
	program := tea.NewProgram(newAuthModel(ctx, t.services.Auth), tea.WithAltScreen())

	finalModel, err := program.Run()
	if err != nil {
		t.logger.Error().Err(err).Str("func", "TUI.LoginFlow").Msg("auth program failed")
		return models.Token{}, err
	}

	result, ok := finalModel.(authModel)
	if !ok || !result.done {
		return models.Token{}, ErrUserQuit
	}

	return result.result, nil
}

// MainLoop runs the vault screens for an authenticated user. The master key
// lives only inside the session and is wiped when the loop ends, whatever
// the reason.
func (t *TUI) MainLoop(ctx context.Context, token models.Token) (logout bool, err error) {
	sess := newSession(token.UserID)
	defer sess.wipe()

	program := tea.NewProgram(newVaultModel(ctx, t.services.Vault, sess), tea.WithAltScreen())

	finalModel, err := program.Run()
	if err != nil {
		t.logger.Error().Err(err).Str("func", "TUI.MainLoop").Msg("vault program failed")
		return false, err
	}

	result, ok := finalModel.(vaultModel)
	if !ok {
		return false, nil
	}

	return result.logout, nil
}
