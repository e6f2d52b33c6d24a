package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// masterKeyMinLength is enforced here, at the entry gate. The cipher itself
// accepts any key; a short one only hurts the user typing it in.
const masterKeyMinLength = 6

type masterKeyModel struct {
	input  textinput.Model
	errMsg string
}

func newMasterKeyModel() masterKeyModel {
	input := textinput.New()
	input.Placeholder = "master key"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return masterKeyModel{input: input}
}

func (m masterKeyModel) View() string {
	var b strings.Builder
	b.WriteString("Мастер-ключ шифрует секреты на этом устройстве\n")
	b.WriteString("и никогда не отправляется на сервер.\n\n")
	b.WriteString("Ключ │ [" + m.input.View() + "]\n")

	if m.errMsg != "" {
		b.WriteString("\nОшибка: " + m.errMsg + "\n")
	}

	return renderPage("МАСТЕР-КЛЮЧ", strings.TrimRight(b.String(), "\n"), "enter: подтвердить")
}
