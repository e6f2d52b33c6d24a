// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/MKhiriev/go-cred-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCipherService_RoundTrip(t *testing.T) {
	svc := NewCipherService()

	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "ordinary secret", plaintext: "correct horse battery staple"},
		{name: "empty plaintext", plaintext: ""},
		{name: "unicode", plaintext: "пароль-π-🔐"},
		{name: "long plaintext", plaintext: string(make([]byte, 4096))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope, err := svc.Encrypt(tt.plaintext, "master-key")
			require.NoError(t, err)
			require.NotEmpty(t, envelope)

			got, err := svc.Decrypt(envelope, "master-key")
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, got)
		})
	}
}

func TestCipherService_EnvelopesDiffer(t *testing.T) {
	svc := NewCipherService()

	first, err := svc.Encrypt("same plaintext", "master-key")
	require.NoError(t, err)
	second, err := svc.Encrypt("same plaintext", "master-key")
	require.NoError(t, err)

	// Fresh salt and nonce per call: identical inputs never repeat.
	assert.NotEqual(t, first, second)
}

func TestCipherService_WrongKey(t *testing.T) {
	svc := NewCipherService()

	envelope, err := svc.Encrypt("top secret", "right-key")
	require.NoError(t, err)

	got, err := svc.Decrypt(envelope, "wrong-key")
	require.ErrorIs(t, err, ErrDecryptionFailed)
	assert.Empty(t, got)
}

func TestCipherService_Decrypt_Malformed(t *testing.T) {
	svc := NewCipherService()

	valid, err := svc.Encrypt("payload", "master-key")
	require.NoError(t, err)

	// Flip one bit inside the ciphertext region of a valid envelope.
	blob, err := base64.StdEncoding.DecodeString(string(valid))
	require.NoError(t, err)
	blob[len(blob)-1] ^= 0x01
	tampered := models.CipherEnvelope(base64.StdEncoding.EncodeToString(blob))

	// Unknown version byte.
	blob2, err := base64.StdEncoding.DecodeString(string(valid))
	require.NoError(t, err)
	blob2[0] = 0x7f
	badVersion := models.CipherEnvelope(base64.StdEncoding.EncodeToString(blob2))

	tests := []struct {
		name     string
		envelope models.CipherEnvelope
	}{
		{name: "empty envelope", envelope: ""},
		{name: "not base64", envelope: "!!!not-base64!!!"},
		{name: "too short", envelope: models.CipherEnvelope(base64.StdEncoding.EncodeToString([]byte{0x01, 0x02}))},
		{name: "unknown version", envelope: badVersion},
		{name: "tampered ciphertext", envelope: tampered},
		{name: "truncated envelope", envelope: valid[:len(valid)/2]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Decrypt(tt.envelope, "master-key")
			assert.ErrorIs(t, err, ErrDecryptionFailed)
			assert.Empty(t, got)
		})
	}
}
