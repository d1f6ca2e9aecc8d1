// Package storage provides the key/value blob store that learner state is
// persisted to. Every value is a whole JSON document; writes replace the
// previous document for the key.
package storage

import (
	"encoding/json"
	"fmt"
	"log"
)

// Persisted keys. Chapter and quiz keys are defined by the catalog.
const (
	KeyPlacedStickers = "placedStickers"
	KeyStreakData     = "streakData"
)

// Store gets and sets JSON blobs by key
type Store interface {
	GetBlob(key string) ([]byte, bool, error)
	SetBlob(key string, value []byte) error
}

// Load decodes the blob stored under key into dst.
// It reports false when the key is absent, unreadable, or holds a corrupt
// document; dst is left untouched in those cases so callers keep their defaults.
func Load(store Store, key string, dst any) bool {
	raw, found, err := store.GetBlob(key)
	if err != nil {
		log.Printf("Failed to read %s: %v", key, err)
		return false
	}
	if !found || len(raw) == 0 {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Printf("Discarding corrupt %s blob: %v", key, err)
		return false
	}
	return true
}

// Save encodes value and writes it under key
func Save(store Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := store.SetBlob(key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
