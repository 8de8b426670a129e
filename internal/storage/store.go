// Package storage is the widgets' local key-value store. It mirrors
// the browser storage the storefront was designed around: one key
// holds one full JSON snapshot, there is no versioning and no
// multi-key atomicity, and all access is synchronous.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// Persisted keys. Each holds one serialized snapshot.
const (
	KeyCart        = "vapextuc_cart"
	KeyAccounts    = "ruleta_users"
	KeyCurrentUser = "ruleta_current_user"
)

// Snapshots is the narrow store surface the services depend on.
// *Store is the sqlite-backed implementation; Memory backs tests.
type Snapshots interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

// Store persists snapshots in the local sqlite database.
type Store struct {
	db *sql.DB
}

// NewStore creates a snapshot store over an open database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the raw snapshot under key. The second return is false
// when the key has never been written.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM snapshots WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read snapshot %s: %w", key, err)
	}
	return []byte(value), true, nil
}

// Put replaces the snapshot under key.
func (s *Store) Put(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO snapshots (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", key, err)
	}
	return nil
}

// Delete removes the snapshot under key. Deleting an absent key is a
// no-op.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM snapshots WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", key, err)
	}
	return nil
}

// GetJSON unmarshals the snapshot under key into dst. Missing keys
// leave dst untouched and return false.
func GetJSON(s Snapshots, key string, dst any) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("failed to decode snapshot %s: %w", key, err)
	}
	return true, nil
}

// PutJSON serializes v and stores it under key as the full snapshot.
func PutJSON(s Snapshots, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", key, err)
	}
	return s.Put(key, raw)
}
