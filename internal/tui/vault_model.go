// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cred-vault/internal/service"
	"github.com/MKhiriev/go-cred-vault/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type vaultScreen int

const (
	vaultScreenMasterKey vaultScreen = iota
	vaultScreenList
	vaultScreenDetail
	vaultScreenForm
)

const statusClearAfter = 2 * time.Second

// vaultModel is the main loop after login: master key gate, record list,
// detail view and the create/edit form. Overlays (confirm, error) are drawn
// on top of the current screen and consume input while visible.
type vaultModel struct {
	ctx   context.Context
	vault service.VaultService
	sess  *session

	screen    vaultScreen
	masterKey masterKeyModel
	list      listModel
	detail    detailModel
	form      formModel

	showConfirm   bool
	confirm       confirmModel
	pendingDelete string

	showError    bool
	errorOverlay errorOverlayModel

	logout bool
}

func newVaultModel(ctx context.Context, vault service.VaultService, sess *session) vaultModel {
	return vaultModel{
		ctx:       ctx,
		vault:     vault,
		sess:      sess,
		screen:    vaultScreenMasterKey,
		masterKey: newMasterKeyModel(),
		list:      newListModel(),
	}
}

func (m vaultModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m vaultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.list.lastErr = msg.err
			return m, nil
		}

		m.list.lastErr = nil
		m.list.records = msg.records
		if m.list.idx >= len(m.list.records) {
			m.list.idx = len(m.list.records) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil

	case recordSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showOverlayError(msg.err)
			return m, nil
		}

		m.screen = vaultScreenList
		m.list.loading = true
		return m, m.cmdLoadList()

	case recordDeletedMsg:
		if msg.err != nil {
			m.showOverlayError(msg.err)
			return m, nil
		}

		m.screen = vaultScreenList
		m.list.loading = true
		return m, m.cmdLoadList()

	case copiedMsg:
		if msg.err != nil {
			m.showOverlayError(msg.err)
			return m, nil
		}
		return m.setStatus("Скопировано в буфер обмена")

	case clearStatusMsg:
		m.list.status = ""
		m.detail.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m vaultModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showError {
		switch msg.String() {
		case "enter", "esc":
			m.showError = false
		}
		return m, nil
	}

	if m.showConfirm {
		switch msg.String() {
		case "y":
			m.showConfirm = false
			id := m.pendingDelete
			m.pendingDelete = ""
			return m, m.cmdDelete(id)
		case "n", "esc":
			m.showConfirm = false
			m.pendingDelete = ""
		}
		return m, nil
	}

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case vaultScreenMasterKey:
		return m.updateMasterKey(msg)
	case vaultScreenList:
		return m.updateList(msg)
	case vaultScreenDetail:
		return m.updateDetail(msg)
	case vaultScreenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m vaultModel) updateMasterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		key := m.masterKey.input.Value()
		if len([]rune(key)) < masterKeyMinLength {
			m.masterKey.errMsg = "Мастер-ключ должен быть не короче 6 символов"
			return m, nil
		}

		m.sess.setKey(key)
		m.masterKey.input.SetValue("")
		m.masterKey.errMsg = ""
		m.screen = vaultScreenList
		m.list.loading = true
		return m, m.cmdLoadList()
	}

	var cmd tea.Cmd
	m.masterKey.input, cmd = m.masterKey.input.Update(msg)
	return m, cmd
}

func (m vaultModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "l":
		m.logout = true
		m.sess.wipe()
		return m, tea.Quit
	case "up", "k":
		if m.list.idx > 0 {
			m.list.idx--
		}
	case "down", "j":
		if m.list.idx < len(m.list.records)-1 {
			m.list.idx++
		}
	case "enter":
		record, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{record: record}
		m.screen = vaultScreenDetail
	case "n":
		m.form = newFormModel(nil, "")
		m.screen = vaultScreenForm
		return m, textinput.Blink
	case "e":
		record, ok := m.list.current()
		if !ok {
			return m, nil
		}
		return m.openEditForm(record)
	case "d":
		record, ok := m.list.current()
		if !ok {
			return m, nil
		}
		return m.askDelete(record), nil
	}
	return m, nil
}

func (m vaultModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.detail = detailModel{}
		m.screen = vaultScreenList
	case "r":
		if m.detail.revealed {
			m.detail.revealed = false
			m.detail.plaintext = ""
			m.detail.revealErr = nil
			return m, nil
		}

		plaintext, err := m.vault.Reveal(m.detail.record, m.sess.key())
		m.detail.revealed = true
		m.detail.plaintext = plaintext
		m.detail.revealErr = err
	case "c":
		plaintext, err := m.vault.Reveal(m.detail.record, m.sess.key())
		if err != nil {
			m.detail.revealErr = err
			return m, nil
		}
		return m, m.cmdCopy(plaintext)
	case "u":
		return m, m.cmdCopy(m.detail.record.Username)
	case "e":
		return m.openEditForm(m.detail.record)
	case "d":
		return m.askDelete(m.detail.record), nil
	}
	return m, nil
}

func (m vaultModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = vaultScreenList
		return m, nil
	case "tab":
		m.form.focusNext()
		return m, nil
	case "shift+tab":
		m.form.focusPrev()
		return m, nil
	case "ctrl+g":
		m.form.setSecret(m.vault.GenerateSecret(generatedSecretLength))
		return m, nil
	case "enter":
		if m.form.submitting {
			return m, nil
		}

		fields := m.form.fields()
		if fields.Title == "" || fields.Username == "" {
			m.form.errMsg = "Название и логин обязательны"
			return m, nil
		}

		m.form.errMsg = ""
		m.form.submitting = true
		return m, m.cmdSave(fields, m.form.editing, m.form.recordID)
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

// openEditForm decrypts the secret first so the form can show it as
// plaintext. A wrong master key surfaces as an overlay instead of silently
// re-encrypting garbage.
func (m vaultModel) openEditForm(record models.CredentialRecord) (tea.Model, tea.Cmd) {
	plaintext, err := m.vault.Reveal(record, m.sess.key())
	if err != nil {
		m.showOverlayError(err)
		return m, nil
	}

	m.form = newFormModel(&record, plaintext)
	m.screen = vaultScreenForm
	return m, textinput.Blink
}

func (m vaultModel) askDelete(record models.CredentialRecord) vaultModel {
	m.showConfirm = true
	m.confirm = confirmModel{message: record.Title}
	m.pendingDelete = record.ID
	return m
}

func (m *vaultModel) showOverlayError(err error) {
	m.showError = true
	m.errorOverlay = errorOverlayModel{message: humanizeServerUnavailableError(err)}
}

func (m vaultModel) setStatus(status string) (tea.Model, tea.Cmd) {
	switch m.screen {
	case vaultScreenDetail:
		m.detail.status = status
	default:
		m.list.status = status
	}
	return m, tea.Tick(statusClearAfter, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m vaultModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case vaultScreenMasterKey:
		m.masterKey.input, cmd = m.masterKey.input.Update(msg)
	case vaultScreenForm:
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	}
	return m, cmd
}

func (m vaultModel) View() string {
	if m.showError {
		return m.errorOverlay.View()
	}
	if m.showConfirm {
		return m.confirm.View()
	}

	switch m.screen {
	case vaultScreenMasterKey:
		return m.masterKey.View()
	case vaultScreenDetail:
		return m.detail.View()
	case vaultScreenForm:
		return m.form.View()
	default:
		return m.list.View()
	}
}

func (m vaultModel) cmdLoadList() tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		records, err := vault.List(ctx)
		return listLoadedMsg{records: records, err: err}
	}
}

func (m vaultModel) cmdSave(fields models.CredentialFields, editing bool, recordID string) tea.Cmd {
	ctx := m.ctx
	vault := m.vault
	masterKey := m.sess.key()
	userID := m.sess.userID

	return func() tea.Msg {
		if editing {
			return recordSavedMsg{err: vault.Update(ctx, recordID, fields, masterKey)}
		}

		_, err := vault.Create(ctx, fields, masterKey, userID)
		return recordSavedMsg{err: err}
	}
}

func (m vaultModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		return recordDeletedMsg{err: vault.Delete(ctx, id)}
	}
}

func (m vaultModel) cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}
