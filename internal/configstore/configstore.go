package configstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/printvault/printvault/internal/errors"
	logger "github.com/printvault/printvault/internal/logging"
)

// FileName is the configuration document file inside the data directory.
const FileName = "config.json"

// Document is a flat, order-irrelevant mapping from configuration keys to
// scalar values (strings and numbers).
type Document map[string]any

// Default returns the initial configuration document written on first use.
func Default() Document {
	return Document{
		"db_user":          "user",
		"db_password":      "password",
		"db_host":          "host",
		"db_port":          "3306",
		"db_database":      "database",
		"printer_id":       0,
		"currency":         "€",
		"electricity_cost": 0.0,
	}
}

// Store owns the configuration document. No other component writes the
// backing file.
type Store struct {
	dataDir string
	log     logger.Logger
}

// New returns a Store rooted at dataDir.
func New(dataDir string, log logger.Logger) *Store {
	return &Store{dataDir: dataDir, log: log}
}

// Path returns the path of the configuration document.
func (s *Store) Path() string {
	return filepath.Join(s.dataDir, FileName)
}

// Exists reports whether the configuration document is present on disk.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.Path())
	return err == nil && !info.IsDir()
}

// Ensure creates the data directory and, if no document exists yet, writes
// the default document. An existing document is never overwritten.
func (s *Store) Ensure() error {
	if err := os.MkdirAll(s.dataDir, 0700); err != nil {
		s.log.Errorf("Failed to create data directory: %v", err)
		return fmt.Errorf("%w: creating %s: %v", apperrors.ErrStorage, s.dataDir, err)
	}
	if s.Exists() {
		return nil
	}
	return s.write(Default())
}

// Load parses the on-disk document. I/O failures are storage errors,
// invalid JSON is a format error; both are distinguishable with errors.Is.
func (s *Store) Load() (Document, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		s.log.Errorf("Error loading configuration: %v", err)
		return nil, fmt.Errorf("%w: reading %s: %v", apperrors.ErrStorage, s.Path(), err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Errorf("Error loading configuration: %v", err)
		return nil, fmt.Errorf("%w: parsing %s: %v", apperrors.ErrFormat, s.Path(), err)
	}
	return doc, nil
}

// Update merges partial into the stored document: each key present in
// partial overwrites the stored top-level key, every other key is
// preserved untouched. There is no deep merge. If the preceding Load
// fails, Update fails with that error instead of writing anything.
// Concurrent updates are last-writer-wins; no lock is taken.
func (s *Store) Update(partial Document) error {
	doc, err := s.Load()
	if err != nil {
		return fmt.Errorf("cannot update configuration: %w", err)
	}
	for key, value := range partial {
		doc[key] = value
	}
	if err := s.write(doc); err != nil {
		return err
	}
	s.log.Infof("Configuration updated successfully")
	return nil
}

func (s *Store) write(doc Document) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encoding document: %v", apperrors.ErrFormat, err)
	}
	if err := os.WriteFile(s.Path(), data, 0600); err != nil {
		s.log.Errorf("Failed to save configuration: %v", err)
		return fmt.Errorf("%w: writing %s: %v", apperrors.ErrStorage, s.Path(), err)
	}
	return nil
}
