package store

import (
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/guillaumevincent/monpatrimoine/internal/state"
)

// Keys under which the ledger is stored.
const (
	PositionsKey = "dringg-positions"
	RecordsKey   = "dringg-valeurs"
)

// Ledger persists the application state under two fixed keys.
type Ledger struct {
	kv      *KV
	version int
	mu      sync.Mutex
}

// NewLedger creates a Ledger using schema version for both keys.
func NewLedger(kv *KV, version int) *Ledger {
	return &Ledger{kv: kv, version: version}
}

// Load reads the current state. Unreadable keys read as empty.
func (l *Ledger) Load() state.State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return state.State{
		Positions: fromStoredPositions(Load(l.kv, PositionsKey, []storedPosition{}, l.version)),
		Records:   fromStoredValues(Load(l.kv, RecordsKey, []storedValue{}, l.version)),
	}
}

// Update applies fn to the current state and saves the result. Both keys
// are written in one transaction. Nothing is saved when fn returns an error
// or when a stored key cannot be read, so unreadable data is never
// overwritten.
func (l *Ledger) Update(fn func(state.State) (state.State, error)) (state.State, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	current, err := l.loadStrict()
	if err != nil {
		return state.State{}, err
	}
	next, err := fn(current)
	if err != nil {
		return current, err
	}

	err = l.kv.db.Transaction(func(tx *gorm.DB) error {
		if err := write(tx, PositionsKey, toStoredPositions(next.Positions), l.version); err != nil {
			return fmt.Errorf("failed to save %s: %w", PositionsKey, err)
		}
		if err := write(tx, RecordsKey, toStoredValues(next.Records), l.version); err != nil {
			return fmt.Errorf("failed to save %s: %w", RecordsKey, err)
		}
		return nil
	})
	if err != nil {
		return current, err
	}
	return next, nil
}

func (l *Ledger) loadStrict() (state.State, error) {
	positions, err := readOrEmpty[storedPosition](l.kv.db, PositionsKey, l.version)
	if err != nil {
		return state.State{}, err
	}
	values, err := readOrEmpty[storedValue](l.kv.db, RecordsKey, l.version)
	if err != nil {
		return state.State{}, err
	}
	return state.State{Positions: fromStoredPositions(positions), Records: fromStoredValues(values)}, nil
}

// readOrEmpty reads a list, treating an absent key as empty.
func readOrEmpty[T any](db *gorm.DB, key string, version int) ([]T, error) {
	values, err := read[[]T](db, key, version)
	if errors.Is(err, errAbsent) || (err == nil && values == nil) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return values, nil
}
