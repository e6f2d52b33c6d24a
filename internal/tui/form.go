package tui

import (
	"strings"

	"github.com/MKhiriev/go-cred-vault/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// generatedSecretLength matches the length of secrets produced by the
// Generate hotkey in the form.
const generatedSecretLength = 16

type formModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	recordID   string
	submitting bool
	errMsg     string
}

// newFormModel builds the create/edit form. Passing a record pre-fills the
// fields for editing; the secret is the decrypted plaintext supplied by the
// caller, never the envelope.
func newFormModel(record *models.CredentialRecord, secret string) formModel {
	inputs := make([]textinput.Model, 5)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 256
	}
	inputs[0].Placeholder = "title"
	inputs[1].Placeholder = "username"
	inputs[2].Placeholder = "secret"
	inputs[2].EchoMode = textinput.EchoPassword
	inputs[2].EchoCharacter = '*'
	inputs[3].Placeholder = "url"
	inputs[4].Placeholder = "notes"
	inputs[0].Focus()

	m := formModel{inputs: inputs}
	if record == nil {
		return m
	}

	m.editing = true
	m.recordID = record.ID
	m.inputs[0].SetValue(record.Title)
	m.inputs[1].SetValue(record.Username)
	m.inputs[2].SetValue(secret)
	m.inputs[3].SetValue(record.URL)
	m.inputs[4].SetValue(record.Notes)
	return m
}

func (m formModel) fields() models.CredentialFields {
	return models.CredentialFields{
		Title:    strings.TrimSpace(m.inputs[0].Value()),
		Username: strings.TrimSpace(m.inputs[1].Value()),
		Secret:   m.inputs[2].Value(),
		URL:      strings.TrimSpace(m.inputs[3].Value()),
		Notes:    m.inputs[4].Value(),
	}
}

func (m *formModel) setSecret(secret string) {
	m.inputs[2].SetValue(secret)
}

func (m *formModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *formModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m formModel) View() string {
	title := "НОВАЯ ЗАПИСЬ"
	if m.editing {
		title = "РЕДАКТИРОВАНИЕ"
	}

	var b strings.Builder
	b.WriteString("Название: [" + m.inputs[0].View() + "]\n")
	b.WriteString("Логин:    [" + m.inputs[1].View() + "]\n")
	b.WriteString("Секрет:   [" + m.inputs[2].View() + "]\n")
	b.WriteString("URL:      [" + m.inputs[3].View() + "]\n")
	b.WriteString("Заметки:  [" + m.inputs[4].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Сохранение...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nОшибка: " + m.errMsg + "\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"esc: отмена │ tab: след. поле │ ctrl+g: сгенерировать секрет │ enter: сохранить")
}
