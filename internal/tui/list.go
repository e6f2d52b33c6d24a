package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cred-vault/models"
)

type listModel struct {
	records []models.CredentialRecord
	idx     int
	loading bool
	status  string
	lastErr error
}

func newListModel() listModel {
	return listModel{loading: true}
}

func (m listModel) current() (models.CredentialRecord, bool) {
	if len(m.records) == 0 || m.idx < 0 || m.idx >= len(m.records) {
		return models.CredentialRecord{}, false
	}
	return m.records[m.idx], true
}

func (m listModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Загрузка...\n")
	} else if len(m.records) == 0 {
		b.WriteString("Нет записей\n")
	} else {
		for i, record := range m.records {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s  (%s)\n", cursor, fitText(record.Title, 30), fitText(record.Username, 24)))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.lastErr != nil {
		b.WriteString("\nОшибка: " + humanizeServerUnavailableError(m.lastErr) + "\n")
	}

	return renderPage("ХРАНИЛИЩЕ", strings.TrimRight(b.String(), "\n"),
		"n: новая │ enter: открыть │ e: редакт. │ d: удалить │ l: выйти из аккаунта │ q: выход")
}
