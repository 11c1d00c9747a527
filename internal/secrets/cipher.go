package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	apperrors "github.com/printvault/printvault/internal/errors"
	logger "github.com/printvault/printvault/internal/logging"
)

const (
	// NonceSize is the per-encryption nonce length in bytes.
	NonceSize = 16
	// TagSize is the authentication tag length in bytes.
	TagSize = 16
)

// Cipher performs authenticated encryption of individual string values
// using AES-256-GCM with a 16-byte nonce.
type Cipher struct {
	aead cipher.AEAD
	log  logger.Logger
}

// NewCipher returns a Cipher for the given 32-byte key.
func NewCipher(key []byte, log logger.Logger) (*Cipher, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("%w: %w: got %d bytes", apperrors.ErrFormat, apperrors.ErrBadKeyLength, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}
	aead, err := cipher.NewGCMWithNonceSize(block, NonceSize)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AEAD: %w", err)
	}
	return &Cipher{aead: aead, log: log}, nil
}

// Encrypt seals the UTF-8 bytes of plaintext under a fresh random nonce and
// returns base64(nonce || tag || ciphertext). Encrypting the same plaintext
// twice yields different blobs.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Seal appends the tag after the ciphertext; the wire format carries the
	// tag first, so the two segments are swapped here.
	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), nil)
	ctLen := len(sealed) - TagSize

	blob := make([]byte, 0, NonceSize+len(sealed))
	blob = append(blob, nonce...)
	blob = append(blob, sealed[ctLen:]...)
	blob = append(blob, sealed[:ctLen]...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt reverses Encrypt, verifying the authentication tag before any
// plaintext is released. Tampered, truncated, or wrong-key blobs fail; no
// partial plaintext is ever returned.
func (c *Cipher) Decrypt(blob string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		c.log.Errorf("Decryption failed: %v", err)
		return "", fmt.Errorf("%w: invalid base64: %v", apperrors.ErrFormat, err)
	}
	if len(data) < NonceSize+TagSize {
		c.log.Errorf("Decryption failed: blob holds %d bytes, expected at least %d", len(data), NonceSize+TagSize)
		return "", fmt.Errorf("%w: %w", apperrors.ErrFormat, apperrors.ErrBlobTooShort)
	}

	nonce := data[:NonceSize]
	tag := data[NonceSize : NonceSize+TagSize]
	ciphertext := data[NonceSize+TagSize:]

	sealed := make([]byte, 0, len(ciphertext)+TagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		c.log.Errorf("Decryption failed: %v", err)
		return "", fmt.Errorf("%w: %v", apperrors.ErrAuthentication, err)
	}
	return string(plaintext), nil
}

// LooksEncrypted reports whether value is structurally a valid encrypted
// blob: base64 text decoding to at least nonce plus tag. It does not verify
// the tag, so it is a display heuristic, not a security check.
func LooksEncrypted(value string) bool {
	data, err := base64.StdEncoding.DecodeString(value)
	return err == nil && len(data) >= NonceSize+TagSize
}
