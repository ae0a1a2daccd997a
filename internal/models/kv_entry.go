package models

import "time"

// KVEntry is one row of the key-value table backing the versioned store.
// Payload holds a JSON envelope {"version": n, "value": ...}.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;size:191" json:"key"`
	Payload   string    `gorm:"type:text;not null" json:"payload"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName pins the table name shared with the SQL migrations.
func (KVEntry) TableName() string { return "kv_entries" }
