package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/gorm"

	"github.com/guillaumevincent/monpatrimoine/internal/models"
	"github.com/guillaumevincent/monpatrimoine/internal/state"
	"github.com/guillaumevincent/monpatrimoine/internal/store"
	"github.com/guillaumevincent/monpatrimoine/internal/uuid"
)

// StorageVersion is the schema version used by test ledgers.
const StorageVersion = 1

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewTestLedger creates a ledger on db.
func NewTestLedger(t *testing.T, db *gorm.DB) *store.Ledger {
	t.Helper()
	return store.NewLedger(store.NewKV(db), StorageVersion)
}

// CreateTestPosition stores an active position of the given category.
func CreateTestPosition(t *testing.T, ledger *store.Ledger, category models.Category) models.Position {
	t.Helper()

	p := models.Position{
		ID:       uuid.New(),
		Label:    fmt.Sprintf("Test Position %d", nextID()),
		Category: category,
		Active:   true,
	}
	if _, err := ledger.Update(func(s state.State) (state.State, error) {
		return state.AddPosition(s, p), nil
	}); err != nil {
		t.Fatalf("failed to create test position: %v", err)
	}
	return p
}

// CreateTestRecord stores one value record for a position.
func CreateTestRecord(t *testing.T, ledger *store.Ledger, date, positionID string, amount int64) models.ValueRecord {
	t.Helper()

	r := models.ValueRecord{Date: date, PositionID: positionID, Amount: amount}
	if _, err := ledger.Update(func(s state.State) (state.State, error) {
		s.Records = append(append([]models.ValueRecord(nil), s.Records...), r)
		return s, nil
	}); err != nil {
		t.Fatalf("failed to create test record: %v", err)
	}
	return r
}
