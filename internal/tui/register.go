package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// registerFormModel holds the state of the registration screen: username,
// masked password, and an optional display name.
type registerFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newRegisterFormModel() registerFormModel {
	loginInput := textinput.New()
	loginInput.Placeholder = "login"
	loginInput.CharLimit = 64
	loginInput.Width = 40
	loginInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	nameInput := textinput.New()
	nameInput.Placeholder = "name (optional)"
	nameInput.CharLimit = 64
	nameInput.Width = 40

	return registerFormModel{inputs: []textinput.Model{loginInput, passwordInput, nameInput}}
}

func (m *registerFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *registerFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m registerFormModel) View() string {
	var b strings.Builder
	b.WriteString("Логин   │ [" + m.inputs[0].View() + "]\n")
	b.WriteString("Пароль  │ [" + m.inputs[1].View() + "]\n")
	b.WriteString("Имя     │ [" + m.inputs[2].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Зарегистрироваться...]\n")
	} else {
		b.WriteString("\n[Зарегистрироваться]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: " + m.errMsg + "\n")
	}

	return renderPage("РЕГИСТРАЦИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}
