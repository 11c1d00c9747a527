// Package keystore owns generation, persistence, and loading of the
// encryption key and its salt.
//
// # Artifacts
//
// Two raw files live in the data directory:
//
//   - key.key: the derived 32-byte encryption key, no header, no encoding
//   - salt.key: the 16-byte KDF salt, no header, no encoding
//
// On first use a random salt is drawn and the key is derived from it with
// scrypt (N=2^14, r=8, p=1). Both artifacts are written atomically, salt
// first, so a crash mid-initialization cannot leave a key on disk without
// the salt it was derived from. On later runs both files are loaded and
// length-checked; truncated or corrupted artifacts fail with a format
// error rather than being used.
//
// # Known weakness
//
// The KDF passphrase is a compiled-in constant, so the security of stored
// secrets rests entirely on the randomness of the salt and on the key and
// salt artifacts staying confidential at rest. Deriving the passphrase
// from an OS secret store would strengthen this.
package keystore
