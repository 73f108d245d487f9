// Package localstore is a file-backed JSON key-value store. Each record key
// maps to one JSON document on disk, mirroring the browser localStorage model
// the portal was designed around: load on start, full rewrite on every save.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"eventPortal/internal/config"
)

type Storage struct {
	dir string
}

func New(cfg *config.Storage) (*Storage, error) {
	if err := os.MkdirAll(cfg.Path, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &Storage{dir: cfg.Path}, nil
}

func (s *Storage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads the record for key into v. It returns false when no record
// exists. A record that exists but cannot be decoded is reported as an
// error; callers treat it the same as absent (degrade to defaults rather
// than fail hard).
func (s *Storage) Load(key string, v any) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read record %q: %w", key, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode record %q: %w", key, err)
	}

	return true, nil
}

// Save writes v as the record for key, replacing any prior content. The
// write goes through a temp file so a failed save never corrupts the
// existing record.
func (s *Storage) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode record %q: %w", key, err)
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write record %q: %w", key, err)
	}

	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to replace record %q: %w", key, err)
	}

	return nil
}

// Delete removes the record for key. Deleting an absent record is not an
// error.
func (s *Storage) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete record %q: %w", key, err)
	}

	return nil
}
