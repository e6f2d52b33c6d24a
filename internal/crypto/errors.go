package crypto

import "errors"

// ErrDecryptionFailed is returned by [CipherService.Decrypt] whenever the
// plaintext cannot be recovered: wrong master key, corrupted or truncated
// envelope, invalid Base64, or an unknown format version. Callers match it
// with errors.Is; the underlying cause is wrapped for logging.
var ErrDecryptionFailed = errors.New("decryption failed")
