package services

import (
	"time"

	"github.com/guillaumevincent/monpatrimoine/internal/bilan"
	"github.com/guillaumevincent/monpatrimoine/internal/pagination"
	"github.com/guillaumevincent/monpatrimoine/internal/store"
)

// snapshotService computes wealth snapshots from the stored ledger.
type snapshotService struct {
	ledger *store.Ledger
	now    func() time.Time
}

// NewSnapshotService creates a new SnapshotServicer. now provides the instant
// of the leading "current" snapshot; nil means time.Now.
func NewSnapshotService(ledger *store.Ledger, now func() time.Time) SnapshotServicer {
	if now == nil {
		now = time.Now
	}
	return &snapshotService{ledger: ledger, now: now}
}

// GetSnapshots returns the current snapshot followed by one snapshot per
// bilan date, most recent first.
func (s *snapshotService) GetSnapshots() ([]bilan.Snapshot, error) {
	return s.ledger.Load().Snapshots(s.now()), nil
}

// GetSnapshotPage returns one page of GetSnapshots.
func (s *snapshotService) GetSnapshotPage(page pagination.PageRequest) (*pagination.PageResponse[bilan.Snapshot], error) {
	snapshots, err := s.GetSnapshots()
	if err != nil {
		return nil, err
	}
	resp := pagination.Slice(snapshots, page)
	return &resp, nil
}
