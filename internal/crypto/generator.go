// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"io"
)

// secretCharset is the alphabet secrets are drawn from: lowercase, uppercase,
// digits, and a fixed set of symbols. 90 characters total.
const secretCharset = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!@#$%^&*()_+-=[]{}|;:,.<>?"

// secretGenerator is the private implementation of [SecretGenerator].
type secretGenerator struct{}

// NewSecretGenerator constructs a [SecretGenerator] backed by the
// OS CSPRNG.
func NewSecretGenerator() SecretGenerator {
	return &secretGenerator{}
}

// GenerateSecret implements [SecretGenerator]. Bytes are drawn from
// crypto/rand and rejected when they fall outside the largest multiple of
// the charset size, so every character is selected with equal probability
// (no modulo bias). A failing CSPRNG read cannot be recovered from; it
// panics rather than silently weakening the secret.
func (g *secretGenerator) GenerateSecret(length int) string {
	if length <= 0 {
		return ""
	}

	// Largest byte value usable without bias: reject anything at or above
	// the highest multiple of len(secretCharset) that fits in a byte.
	limit := 256 - 256%len(secretCharset)

	secret := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(secret) < length {
		if _, err := io.ReadFull(rand.Reader, buf); err != nil {
			panic("crypto/rand unavailable: " + err.Error())
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			secret = append(secret, secretCharset[int(b)%len(secretCharset)])
			if len(secret) == length {
				break
			}
		}
	}

	return string(secret)
}
