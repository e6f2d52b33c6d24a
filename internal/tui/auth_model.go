package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-cred-vault/internal/service"
	"github.com/MKhiriev/go-cred-vault/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type authScreen int

const (
	authScreenWelcome authScreen = iota
	authScreenLogin
	authScreenRegister
)

// authModel drives the welcome/login/register flow. It quits either with a
// session token in result or with quitByUser set.
type authModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	screen   authScreen
	welcome  welcomeModel
	login    loginFormModel
	register registerFormModel

	result     models.Token
	done       bool
	quitByUser bool
}

func newAuthModel(ctx context.Context, auth service.ClientAuthService) authModel {
	return authModel{
		ctx:      ctx,
		auth:     auth,
		screen:   authScreenWelcome,
		welcome:  newWelcomeModel(),
		login:    newLoginFormModel(),
		register: newRegisterFormModel(),
	}
}

func (m authModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m authModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authDoneMsg); ok {
		m.login.submitting = false
		m.register.submitting = false
		if result.err != nil {
			errMsg := humanizeServerUnavailableError(result.err)
			if m.screen == authScreenRegister {
				m.register.errMsg = errMsg
			} else {
				m.login.errMsg = errMsg
			}
			return m, nil
		}

		m.result = result.token
		m.done = true
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocusedInput(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		m.quitByUser = true
		return m, tea.Quit
	}

	switch m.screen {
	case authScreenWelcome:
		return m.updateWelcome(keyMsg)
	case authScreenLogin:
		return m.updateLogin(keyMsg)
	case authScreenRegister:
		return m.updateRegister(keyMsg)
	}

	return m, nil
}

func (m authModel) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitByUser = true
		return m, tea.Quit
	case "up", "k":
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case "down", "j":
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case "enter":
		if m.welcome.idx == 0 {
			m.login = newLoginFormModel()
			m.screen = authScreenLogin
		} else {
			m.register = newRegisterFormModel()
			m.screen = authScreenRegister
		}
		return m, textinput.Blink
	}
	return m, nil
}

func (m authModel) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = authScreenWelcome
		return m, nil
	case "tab":
		m.login.focusNext()
		return m, nil
	case "shift+tab":
		m.login.focusPrev()
		return m, nil
	case "enter":
		if m.login.submitting {
			return m, nil
		}

		login := strings.TrimSpace(m.login.inputs[0].Value())
		password := m.login.inputs[1].Value()
		if login == "" || password == "" {
			m.login.errMsg = "Логин и пароль обязательны"
			return m, nil
		}

		m.login.errMsg = ""
		m.login.submitting = true
		return m, m.cmdLogin(login, password)
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m authModel) updateRegister(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = authScreenWelcome
		return m, nil
	case "tab":
		m.register.focusNext()
		return m, nil
	case "shift+tab":
		m.register.focusPrev()
		return m, nil
	case "enter":
		if m.register.submitting {
			return m, nil
		}

		login := strings.TrimSpace(m.register.inputs[0].Value())
		password := m.register.inputs[1].Value()
		name := strings.TrimSpace(m.register.inputs[2].Value())
		if login == "" || password == "" {
			m.register.errMsg = "Логин и пароль обязательны"
			return m, nil
		}

		m.register.errMsg = ""
		m.register.submitting = true
		return m, m.cmdRegister(login, password, name)
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

// updateFocusedInput forwards non-key messages (e.g. cursor blink ticks) to
// the input that currently has focus.
func (m authModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case authScreenLogin:
		m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	case authScreenRegister:
		m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	}
	return m, cmd
}

func (m authModel) View() string {
	switch m.screen {
	case authScreenLogin:
		return m.login.View()
	case authScreenRegister:
		return m.register.View()
	default:
		return m.welcome.View()
	}
}

func (m authModel) cmdLogin(login, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		token, err := auth.Login(ctx, login, password)
		return authDoneMsg{token: token, err: err}
	}
}

func (m authModel) cmdRegister(login, password, name string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		token, err := auth.Register(ctx, login, password, name)
		return authDoneMsg{token: token, err: err}
	}
}
