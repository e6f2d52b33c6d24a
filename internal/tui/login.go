// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// loginFormModel holds the state of the login screen: a username input and a
// masked password input.
type loginFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newLoginFormModel() loginFormModel {
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

	return loginFormModel{inputs: []textinput.Model{loginInput, passwordInput}}
}

func (m *loginFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *loginFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m loginFormModel) View() string {
	var b strings.Builder
	b.WriteString("Логин   │ [" + m.inputs[0].View() + "]\n")
	b.WriteString("Пароль  │ [" + m.inputs[1].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Войти...]\n")
	} else {
		b.WriteString("\n[Войти]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: " + m.errMsg + "\n")
	}

	return renderPage("ВХОД", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}
