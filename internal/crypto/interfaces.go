package crypto

import "github.com/MKhiriev/go-cred-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// CipherService performs all client-side encryption. It knows nothing about
// the network, the database, or users; its only job is turning plaintext
// secrets into opaque envelopes and back.
//
// The flow:
//
//	envelope = Encrypt(secret, masterKey)   before any persistence call
//	secret   = Decrypt(envelope, masterKey) transiently, for display only
//
// The master key exists only in client memory and is never transmitted
// to the server. Persisted records carry envelopes exclusively.
type CipherService interface {
	// Encrypt derives a per-call key from masterKey via Argon2id with a
	// fresh random salt and seals plaintext with AES-256-GCM under a fresh
	// random nonce. Two calls with identical inputs produce different
	// envelopes. The returned envelope is printable and safe to store
	// anywhere; without the master key it is random noise.
	Encrypt(plaintext string, masterKey string) (models.CipherEnvelope, error)

	// Decrypt reverses Encrypt. It returns the original plaintext only if
	// masterKey matches the key the envelope was sealed with and the
	// envelope is intact. A wrong key, a truncated envelope, a flipped
	// ciphertext bit, or an unknown format version all yield
	// [ErrDecryptionFailed], never garbled output and never a panic.
	Decrypt(envelope models.CipherEnvelope, masterKey string) (string, error)
}

// SecretGenerator produces random secrets for the "generate" action in the
// record form.
type SecretGenerator interface {
	// GenerateSecret returns a string of exactly length characters drawn
	// uniformly and independently from the generator charset. A length of
	// zero or less yields an empty string.
	GenerateSecret(length int) string
}
