// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/MKhiriev/go-cred-vault/models"
	"golang.org/x/crypto/argon2"
)

// Envelope layout, before Base64: version (1 byte) ‖ salt (16) ‖ nonce (12) ‖
// GCM ciphertext. The version byte guards format evolution: decryption of an
// unknown version fails explicitly instead of misreading the layout.
const (
	envelopeVersion = 0x01
	saltSize        = 16
	nonceSize       = 12
)

// cipherService is the private implementation of [CipherService].
type cipherService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewCipherService constructs a [CipherService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewCipherService() CipherService {
	return &cipherService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// Encrypt implements [CipherService]. It reads a fresh salt and nonce from
// the OS CSPRNG, derives a 256-bit key from masterKey and the salt via
// Argon2id, seals plaintext with AES-256-GCM, and returns the Base64
// (standard encoding) envelope. The only error paths are CSPRNG exhaustion
// and cipher construction, both of which callers treat as fatal.
func (c *cipherService) Encrypt(plaintext string, masterKey string) (models.CipherEnvelope, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	gcm, err := c.buildAEAD(masterKey, salt)
	if err != nil {
		return "", err
	}

	// Assemble version || salt || nonce || ciphertext in one allocation.
	blob := make([]byte, 0, 1+saltSize+nonceSize+len(plaintext)+gcm.Overhead())
	blob = append(blob, envelopeVersion)
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, []byte(plaintext), nil)

	return models.CipherEnvelope(base64.StdEncoding.EncodeToString(blob)), nil
}

// Decrypt implements [CipherService]. It Base64-decodes the envelope,
// checks the version byte, splits out salt and nonce, re-derives the key
// from masterKey via Argon2id, and opens the ciphertext with AES-256-GCM.
// Every failure mode collapses into [ErrDecryptionFailed] with the cause
// wrapped; a wrong master key is indistinguishable from a corrupted
// envelope by design of the authentication tag.
func (c *cipherService) Decrypt(envelope models.CipherEnvelope, masterKey string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(string(envelope))
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrDecryptionFailed, err)
	}

	if len(blob) < 1+saltSize+nonceSize {
		return "", fmt.Errorf("%w: envelope too short", ErrDecryptionFailed)
	}

	if blob[0] != envelopeVersion {
		return "", fmt.Errorf("%w: unknown envelope version 0x%02x", ErrDecryptionFailed, blob[0])
	}

	salt := blob[1 : 1+saltSize]
	nonce := blob[1+saltSize : 1+saltSize+nonceSize]
	ciphertext := blob[1+saltSize+nonceSize:]

	gcm, err := c.buildAEAD(masterKey, salt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	// Decrypt and verify the auth tag. An error here almost always means
	// the user entered the wrong master key.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: open ciphertext: %w", ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}

// buildAEAD derives a 256-bit key from masterKey and salt via Argon2id with
// the parameters stored in the receiver and wraps it in an AES-GCM AEAD.
func (c *cipherService) buildAEAD(masterKey string, salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(
		[]byte(masterKey),
		salt,
		c.argonTime,
		c.argonMemory,
		c.argonThreads,
		c.argonKeyLen,
	)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
