// Package secrets provides authenticated encryption for individual
// configuration values.
//
// # Wire format
//
// An encrypted value is a single base64 string decoding to:
//
//	nonce (16 bytes) || tag (16 bytes) || ciphertext (variable)
//
// Encryption uses AES-256-GCM with a random 16-byte nonce generated
// internally per call; callers never supply or reuse a nonce, so
// re-encrypting the same value produces different output
// (non-deterministic encryption). No associated data is authenticated
// beyond the ciphertext itself.
//
// # Failure classes
//
// Decryption fails closed. Invalid base64 and blobs shorter than 32
// decoded bytes are rejected as format errors before any cryptography
// runs; a tag mismatch (tampering, corruption, or the wrong key) is an
// authentication error. No failure ever yields partial plaintext.
package secrets
