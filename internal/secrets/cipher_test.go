package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	apperrors "github.com/printvault/printvault/internal/errors"
	logger "github.com/printvault/printvault/internal/logging"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		t.Fatalf("Failed to generate test key: %v", err)
	}
	return key
}

func testCipher(t *testing.T) *Cipher {
	t.Helper()
	c, err := NewCipher(testKey(t), logger.Logger{})
	if err != nil {
		t.Fatalf("NewCipher failed: %v", err)
	}
	return c
}

func TestNewCipherRejectsBadKeyLength(t *testing.T) {
	for _, size := range []int{0, 16, 31, 33, 64} {
		if _, err := NewCipher(make([]byte, size), logger.Logger{}); err == nil {
			t.Errorf("NewCipher accepted a %d-byte key", size)
		}
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	c := testCipher(t)

	plaintexts := []string{
		"",
		"p",
		"hunter2",
		"correct horse battery staple",
		"paßwörter über äüö",
		"秘密のパスワード",
		strings.Repeat("long plaintext ", 100),
	}

	for _, plaintext := range plaintexts {
		blob, err := c.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt(%q) failed: %v", plaintext, err)
		}

		got, err := c.Decrypt(blob)
		if err != nil {
			t.Fatalf("Decrypt of Encrypt(%q) failed: %v", plaintext, err)
		}
		if got != plaintext {
			t.Errorf("Round trip of %q returned %q", plaintext, got)
		}
	}
}

func TestEncryptBlobStructure(t *testing.T) {
	c := testCipher(t)

	plaintext := "database password"
	blob, err := c.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	data, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		t.Fatalf("Blob is not valid base64: %v", err)
	}

	want := NonceSize + TagSize + len(plaintext)
	if len(data) != want {
		t.Errorf("Expected decoded blob of %d bytes, got %d", want, len(data))
	}
}

func TestEncryptUsesFreshNonce(t *testing.T) {
	c := testCipher(t)

	first, err := c.Encrypt("same plaintext")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	second, err := c.Encrypt("same plaintext")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	if first == second {
		t.Error("Encrypting the same plaintext twice produced identical blobs")
	}
}

func TestDecryptRejectsTamperedBlob(t *testing.T) {
	c := testCipher(t)

	blob, err := c.Encrypt("integrity matters")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	data, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		t.Fatalf("Failed to decode blob: %v", err)
	}

	// Flipping any single byte of nonce, tag, or ciphertext must fail.
	for i := range data {
		tampered := make([]byte, len(data))
		copy(tampered, data)
		tampered[i] ^= 0x01

		got, err := c.Decrypt(base64.StdEncoding.EncodeToString(tampered))
		if err == nil {
			t.Fatalf("Decrypt accepted blob with byte %d flipped, returned %q", i, got)
		}
		if !errors.Is(err, apperrors.ErrAuthentication) {
			t.Errorf("Expected authentication error for byte %d, got: %v", i, err)
		}
	}
}

func TestDecryptUnderDifferentKeyFails(t *testing.T) {
	a := testCipher(t)
	b := testCipher(t)

	blob, err := a.Encrypt("only for key A")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	if _, err := b.Decrypt(blob); !errors.Is(err, apperrors.ErrAuthentication) {
		t.Errorf("Expected authentication error under a different key, got: %v", err)
	}
}

func TestDecryptRejectsInvalidBase64(t *testing.T) {
	c := testCipher(t)

	if _, err := c.Decrypt("not*valid*base64!"); !errors.Is(err, apperrors.ErrFormat) {
		t.Errorf("Expected format error for invalid base64, got: %v", err)
	}
}

func TestDecryptRejectsShortBlob(t *testing.T) {
	c := testCipher(t)

	for _, size := range []int{0, 1, 16, 31} {
		blob := base64.StdEncoding.EncodeToString(make([]byte, size))
		_, err := c.Decrypt(blob)
		if !errors.Is(err, apperrors.ErrFormat) {
			t.Errorf("Expected format error for %d-byte blob, got: %v", size, err)
		}
		if !errors.Is(err, apperrors.ErrBlobTooShort) {
			t.Errorf("Expected ErrBlobTooShort for %d-byte blob, got: %v", size, err)
		}
	}
}

func TestLooksEncrypted(t *testing.T) {
	c := testCipher(t)

	blob, err := c.Encrypt("secret")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if !LooksEncrypted(blob) {
		t.Error("LooksEncrypted rejected a valid blob")
	}

	for _, value := range []string{"password", "3306", "host", "not*base64", ""} {
		if LooksEncrypted(value) {
			t.Errorf("LooksEncrypted accepted %q", value)
		}
	}
}
