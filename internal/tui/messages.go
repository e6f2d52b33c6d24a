package tui

import (
	"github.com/MKhiriev/go-cred-vault/models"
)

type authDoneMsg struct {
	token models.Token
	err   error
}

type listLoadedMsg struct {
	records []models.CredentialRecord
	err     error
}

type recordSavedMsg struct {
	err error
}

type recordDeletedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
