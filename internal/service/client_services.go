package service

import (
	"github.com/MKhiriev/go-cred-vault/internal/adapter"
	"github.com/MKhiriev/go-cred-vault/internal/crypto"
)

// ClientServices bundles the client-side services behind one constructor.
type ClientServices struct {
	Auth  ClientAuthService
	Vault VaultService
}

func NewClientServices(serverAdapter adapter.ServerAdapter) *ClientServices {
	return &ClientServices{
		Auth:  NewClientAuthService(serverAdapter),
		Vault: NewVaultService(serverAdapter, crypto.NewCipherService(), crypto.NewSecretGenerator()),
	}
}
