// Package store persists values as versioned JSON envelopes in a key-value
// table. Load and Save never fail from the caller's point of view: problems
// are logged and the read falls back to the caller's default. Ledger.Update
// is the exception and reports read and write failures, since saving over
// unreadable data or saving half of a state would lose data.
package store

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/guillaumevincent/monpatrimoine/internal/logger"
	"github.com/guillaumevincent/monpatrimoine/internal/models"
)

// envelope is the stored form of a value.
type envelope struct {
	Version int             `json:"version"`
	Value   json.RawMessage `json:"value"`
}

// KV is a key-value store on top of the kv_entries table.
type KV struct {
	db *gorm.DB
}

// NewKV creates a KV backed by db.
func NewKV(db *gorm.DB) *KV {
	return &KV{db: db}
}

// errAbsent marks a key that is missing or stored with another schema
// version. Both read as the caller's fallback.
var errAbsent = errors.New("store: key absent")

// Load returns the value stored under key, or fallback when the key is
// absent, unreadable, or stored with a different schema version.
func Load[T any](kv *KV, key string, fallback T, version int) T {
	value, err := read[T](kv.db, key, version)
	if err != nil {
		if !errors.Is(err, errAbsent) {
			logger.Get().Warnw("error reading store key", "key", key, "error", err)
		}
		return fallback
	}
	return value
}

// Save stores value under key with the given schema version.
func Save[T any](kv *KV, key string, value T, version int) {
	if err := write(kv.db, key, value, version); err != nil {
		logger.Get().Warnw("error setting store key", "key", key, "error", err)
	}
}

func read[T any](db *gorm.DB, key string, version int) (T, error) {
	var value T

	var entry models.KVEntry
	if err := db.Where("key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return value, errAbsent
		}
		return value, err
	}

	var env envelope
	if err := json.Unmarshal([]byte(entry.Payload), &env); err != nil {
		return value, err
	}
	if env.Version != version {
		logger.Get().Debugw("store key has another schema version",
			"key", key, "stored_version", env.Version, "version", version)
		return value, errAbsent
	}

	if err := json.Unmarshal(env.Value, &value); err != nil {
		return value, err
	}
	return value, nil
}

func write[T any](db *gorm.DB, key string, value T, version int) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(envelope{Version: version, Value: raw})
	if err != nil {
		return err
	}

	entry := models.KVEntry{Key: key, Payload: string(payload), UpdatedAt: time.Now()}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&entry).Error
}
