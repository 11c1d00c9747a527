package keystore

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/printvault/printvault/internal/errors"
	logger "github.com/printvault/printvault/internal/logging"

	"golang.org/x/crypto/scrypt"
)

const (
	// KeySize is the derived encryption key length in bytes (AES-256).
	KeySize = 32
	// SaltSize is the KDF salt length in bytes.
	SaltSize = 16

	// scrypt work factors, tuned for interactive use.
	scryptN = 1 << 14
	scryptR = 8
	scryptP = 1

	keyFileName  = "key.key"
	saltFileName = "salt.key"
)

// kdfPassphrase is the compiled-in KDF password. Security rests entirely on
// salt randomness and on the key and salt artifacts staying confidential at
// rest; see the package documentation for the implications.
var kdfPassphrase = []byte("some_password")

// Material holds the derived encryption key and the salt it was derived from.
type Material struct {
	Key  []byte // exactly KeySize bytes
	Salt []byte // exactly SaltSize bytes
}

// Store persists the encryption key and its salt as two raw files inside a
// data directory. It never rotates or deletes existing material.
type Store struct {
	dataDir string
	log     logger.Logger
}

// New returns a Store rooted at dataDir.
func New(dataDir string, log logger.Logger) *Store {
	return &Store{dataDir: dataDir, log: log}
}

// KeyPath returns the path of the raw key artifact.
func (s *Store) KeyPath() string {
	return filepath.Join(s.dataDir, keyFileName)
}

// SaltPath returns the path of the raw salt artifact.
func (s *Store) SaltPath() string {
	return filepath.Join(s.dataDir, saltFileName)
}

// Exists reports whether both key artifacts are present on disk.
func (s *Store) Exists() bool {
	return fileExists(s.KeyPath()) && fileExists(s.SaltPath())
}

// Ensure loads the key material, generating and persisting new material
// first if either artifact is missing. Loaded artifacts are validated for
// length so truncated or corrupted material fails explicitly instead of
// being used.
func (s *Store) Ensure() (Material, error) {
	if s.Exists() {
		return s.load()
	}
	return s.generate()
}

func (s *Store) load() (Material, error) {
	key, err := os.ReadFile(s.KeyPath())
	if err != nil {
		s.log.Errorf("Failed to read key artifact: %v", err)
		return Material{}, fmt.Errorf("%w: reading %s: %v", apperrors.ErrStorage, s.KeyPath(), err)
	}
	salt, err := os.ReadFile(s.SaltPath())
	if err != nil {
		s.log.Errorf("Failed to read salt artifact: %v", err)
		return Material{}, fmt.Errorf("%w: reading %s: %v", apperrors.ErrStorage, s.SaltPath(), err)
	}
	if len(key) != KeySize {
		s.log.Errorf("Key artifact holds %d bytes, expected %d", len(key), KeySize)
		return Material{}, fmt.Errorf("%w: %w: got %d bytes", apperrors.ErrFormat, apperrors.ErrBadKeyLength, len(key))
	}
	if len(salt) != SaltSize {
		s.log.Errorf("Salt artifact holds %d bytes, expected %d", len(salt), SaltSize)
		return Material{}, fmt.Errorf("%w: %w: got %d bytes", apperrors.ErrFormat, apperrors.ErrBadSaltLength, len(salt))
	}
	return Material{Key: key, Salt: salt}, nil
}

func (s *Store) generate() (Material, error) {
	if err := os.MkdirAll(s.dataDir, 0700); err != nil {
		return Material{}, fmt.Errorf("%w: creating %s: %v", apperrors.ErrStorage, s.dataDir, err)
	}

	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return Material{}, fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := scrypt.Key(kdfPassphrase, salt, scryptN, scryptR, scryptP, KeySize)
	if err != nil {
		return Material{}, fmt.Errorf("failed to derive key: %w", err)
	}

	// The salt is committed before the key, each with a temp-file rename, so
	// a crash mid-initialization can never persist a key without its salt.
	// A lone salt is regenerated along with the key on the next Ensure.
	if err := writeFileAtomic(s.SaltPath(), salt); err != nil {
		s.log.Errorf("Failed to persist salt: %v", err)
		return Material{}, fmt.Errorf("%w: writing %s: %v", apperrors.ErrStorage, s.SaltPath(), err)
	}
	if err := writeFileAtomic(s.KeyPath(), key); err != nil {
		s.log.Errorf("Failed to persist key: %v", err)
		return Material{}, fmt.Errorf("%w: writing %s: %v", apperrors.ErrStorage, s.KeyPath(), err)
	}

	s.log.Infof("Generated and saved new encryption key and salt")
	return Material{Key: key, Salt: salt}, nil
}

// writeFileAtomic writes data to path via a temp file and rename, with
// permissions restricted to the owner.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
