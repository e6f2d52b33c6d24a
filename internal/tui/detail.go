// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-cred-vault/models"
)

const maskedSecret = "••••••••"

// detailModel shows one record. The secret stays masked until the user
// presses reveal; a failed decryption keeps the mask and shows the error
// instead of crashing the program.
type detailModel struct {
	record    models.CredentialRecord
	revealed  bool
	plaintext string
	revealErr error
	status    string
}

func (m detailModel) secretLine() string {
	if m.revealed && m.revealErr == nil {
		return m.plaintext
	}
	return maskedSecret
}

func (m detailModel) View() string {
	var b strings.Builder

	b.WriteString("Название: " + m.record.Title + "\n")
	b.WriteString("Логин:    " + m.record.Username + "\n")
	b.WriteString("Секрет:   " + m.secretLine() + "\n")
	b.WriteString("URL:      " + valueOrDash(m.record.URL) + "\n")
	b.WriteString("Заметки:  " + valueOrDash(m.record.Notes) + "\n")

	if m.revealErr != nil {
		b.WriteString("\nОшибка: неверный мастер-ключ или повреждённые данные\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("ЗАПИСЬ", strings.TrimRight(b.String(), "\n"),
		"r: показать/скрыть │ c: копир. секрет │ u: копир. логин │ e: редакт. │ d: удалить │ esc: назад")
}
