package errors

import "errors"

// Error kinds. Every failure returned by the store wraps exactly one of
// these, so callers can branch on cause with errors.Is.
var (
	// ErrStorage indicates a directory, file creation, read, or write failure.
	ErrStorage = errors.New("storage failure")

	// ErrFormat indicates malformed persisted data: invalid JSON, invalid
	// base64, or a blob or key artifact with the wrong length.
	ErrFormat = errors.New("malformed data")

	// ErrAuthentication indicates an AEAD tag verification failure during
	// decryption: tampering, corruption, or the wrong key.
	ErrAuthentication = errors.New("authentication failure")
)

// Key material errors indicate problems with the persisted key artifacts.
var (
	// ErrBadKeyLength indicates the key artifact does not hold exactly 32 bytes.
	ErrBadKeyLength = errors.New("encryption key must be exactly 32 bytes")

	// ErrBadSaltLength indicates the salt artifact does not hold exactly 16 bytes.
	ErrBadSaltLength = errors.New("salt must be exactly 16 bytes")
)

// Blob errors indicate problems with an encrypted value before decryption.
var (
	// ErrBlobTooShort indicates a decoded blob shorter than nonce plus tag.
	ErrBlobTooShort = errors.New("encrypted blob shorter than 32 bytes")
)

// Document errors indicate problems with the configuration document.
var (
	// ErrKeyNotFound indicates the requested field is not in the document.
	ErrKeyNotFound = errors.New("configuration key not found")

	// ErrNotEncrypted indicates the field does not hold an encrypted value.
	ErrNotEncrypted = errors.New("field does not hold an encrypted value")
)
