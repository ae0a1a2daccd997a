package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/guillaumevincent/monpatrimoine/internal/uuid"
)

// Entry holds the columns of append-only rows. Entries are never updated
// or soft-deleted, so there is no updated_at or deleted_at.
type Entry struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// BeforeCreate assigns a time-ordered UUIDv7 so ids sort like CreatedAt.
func (e *Entry) BeforeCreate(*gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New()
	}
	return nil
}
