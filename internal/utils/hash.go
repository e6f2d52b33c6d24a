package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Used by the identity provider to derive the stored auth hash from a user
// password; the plaintext password is discarded immediately afterwards.
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
