package testutil_test

import (
	"testing"

	"github.com/guillaumevincent/monpatrimoine/internal/errors"
	"github.com/guillaumevincent/monpatrimoine/internal/models"
	"github.com/guillaumevincent/monpatrimoine/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	for _, table := range []string{"kv_entries", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	testutil.CreateTestPosition(t, testutil.NewTestLedger(t, first), models.CategoryCash)

	if got := len(testutil.NewTestLedger(t, second).Load().Positions); got != 0 {
		t.Errorf("expected an empty second database, got %d positions", got)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	ledger := testutil.NewTestLedger(t, db)

	p := testutil.CreateTestPosition(t, ledger, models.CategoryEquity)
	if p.ID == "" {
		t.Fatal("position should have an ID")
	}
	testutil.CreateTestRecord(t, ledger, "2024-03-01T00:00:00.000Z", p.ID, 5000)

	s := ledger.Load()
	if len(s.Positions) != 1 || s.Positions[0].Category != models.CategoryEquity {
		t.Errorf("expected one equity position, got %+v", s.Positions)
	}
	if len(s.Records) != 1 || s.Records[0].Amount != 5000 {
		t.Errorf("expected one record of 5000, got %+v", s.Records)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrPositionNotFound, "custom message")
	testutil.AssertAppError(t, err, "POSITION_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
