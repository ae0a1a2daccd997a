package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/guillaumevincent/monpatrimoine/internal/logger"
	"github.com/guillaumevincent/monpatrimoine/internal/models"
	"github.com/guillaumevincent/monpatrimoine/internal/store"
	"github.com/guillaumevincent/monpatrimoine/internal/testutil"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func observeWarnings(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.WarnLevel)
	restore := logger.Replace(zap.New(core))
	t.Cleanup(restore)
	return logs
}

func TestLoad_MissingKeyReturnsFallback(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	logs := observeWarnings(t)
	kv := store.NewKV(db)

	got := store.Load(kv, "missing", sample{Name: "default"}, 1)

	assert.Equal(t, sample{Name: "default"}, got)
	assert.Zero(t, logs.Len(), "an absent key is not worth a warning")
}

func TestSaveThenLoad(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	kv := store.NewKV(db)

	store.Save(kv, "k", sample{Name: "a", Count: 1}, 3)
	store.Save(kv, "k", sample{Name: "b", Count: 2}, 3)

	assert.Equal(t, sample{Name: "b", Count: 2}, store.Load(kv, "k", sample{}, 3))

	var count int64
	require.NoError(t, db.Model(&models.KVEntry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSave_WritesVersionedEnvelope(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	kv := store.NewKV(db)

	store.Save(kv, "k", []int{1, 2}, 7)

	var entry models.KVEntry
	require.NoError(t, db.First(&entry, "key = ?", "k").Error)
	assert.JSONEq(t, `{"version":7,"value":[1,2]}`, entry.Payload)
}

func TestLoad_VersionMismatchReturnsFallback(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	logs := observeWarnings(t)
	kv := store.NewKV(db)

	store.Save(kv, "k", sample{Name: "old"}, 1)

	assert.Equal(t, sample{Name: "fallback"}, store.Load(kv, "k", sample{Name: "fallback"}, 2))
	assert.Zero(t, logs.Len())
}

func TestLoad_CorruptPayloadLogsAndReturnsFallback(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	logs := observeWarnings(t)
	kv := store.NewKV(db)

	require.NoError(t, db.Create(&models.KVEntry{Key: "k", Payload: "{not json"}).Error)

	assert.Equal(t, sample{Name: "fallback"}, store.Load(kv, "k", sample{Name: "fallback"}, 1))
	assert.Equal(t, 1, logs.FilterMessage("error reading store key").Len())
}

func TestLoad_WrongValueShapeLogsAndReturnsFallback(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	logs := observeWarnings(t)
	kv := store.NewKV(db)

	store.Save(kv, "k", "a string", 1)

	assert.Equal(t, sample{Name: "fallback"}, store.Load(kv, "k", sample{Name: "fallback"}, 1))
	assert.Equal(t, 1, logs.FilterMessage("error reading store key").Len())
}

func TestSave_ClosedDatabaseOnlyLogs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	logs := observeWarnings(t)
	kv := store.NewKV(db)
	testutil.TeardownTestDB(t, db)

	assert.NotPanics(t, func() { store.Save(kv, "k", sample{}, 1) })
	assert.Equal(t, 1, logs.FilterMessage("error setting store key").Len())

	assert.Equal(t, sample{Name: "fallback"}, store.Load(kv, "k", sample{Name: "fallback"}, 1))
	assert.Equal(t, 1, logs.FilterMessage("error reading store key").Len())
}

func TestSave_UnencodableValueOnlyLogs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	logs := observeWarnings(t)
	kv := store.NewKV(db)

	store.Save(kv, "k", map[string]any{"f": func() {}}, 1)

	assert.Equal(t, 1, logs.FilterMessage("error setting store key").Len())
	assert.Nil(t, store.Load[map[string]any](kv, "k", nil, 1))
}
