package models

type (
	// CipherEnvelope is a string alias representing an encrypted secret value.
	// It is produced by the cipher and stored verbatim; its internal layout
	// (embedded salt, nonce, ciphertext) is opaque to every other layer.
	CipherEnvelope string
)
