// Package state holds the positions and value records of the application
// and the pure functions that update them. Functions never modify their
// input State; they return a new one.
package state

import (
	"errors"
	"slices"
	"time"

	"github.com/guillaumevincent/monpatrimoine/internal/bilan"
	"github.com/guillaumevincent/monpatrimoine/internal/models"
)

var (
	ErrPositionNotFound = errors.New("position not found")
	ErrBilanNotFound    = errors.New("no bilan for this date")
)

// State is the whole persisted data set.
type State struct {
	Positions []models.Position
	Records   []models.ValueRecord
}

// Snapshots aggregates s as of now.
func (s State) Snapshots(now time.Time) []bilan.Snapshot {
	return bilan.Compute(s.Positions, s.Records, now)
}

// Position returns the position with the given id.
func (s State) Position(id string) (models.Position, bool) {
	i := s.positionIndex(id)
	if i < 0 {
		return models.Position{}, false
	}
	return s.Positions[i], true
}

func (s State) positionIndex(id string) int {
	return slices.IndexFunc(s.Positions, func(p models.Position) bool { return p.ID == id })
}

// AddPosition appends p.
func AddPosition(s State, p models.Position) State {
	return State{
		Positions: append(slices.Clip(s.Positions), p),
		Records:   s.Records,
	}
}

// UpdatePosition changes the label and category of a position in place.
func UpdatePosition(s State, id, label string, category models.Category) (State, error) {
	return editPosition(s, id, func(p *models.Position) {
		p.Label = label
		p.Category = category
	})
}

// TogglePositionActive flips the active flag of a position.
func TogglePositionActive(s State, id string) (State, error) {
	return editPosition(s, id, func(p *models.Position) { p.Active = !p.Active })
}

func editPosition(s State, id string, edit func(*models.Position)) (State, error) {
	i := s.positionIndex(id)
	if i < 0 {
		return s, ErrPositionNotFound
	}
	positions := slices.Clone(s.Positions)
	edit(&positions[i])
	return State{Positions: positions, Records: s.Records}, nil
}

// DeletePosition removes a position and every record that refers to it.
func DeletePosition(s State, id string) (State, error) {
	if s.positionIndex(id) < 0 {
		return s, ErrPositionNotFound
	}
	positions := slices.DeleteFunc(slices.Clone(s.Positions), func(p models.Position) bool { return p.ID == id })
	records := slices.DeleteFunc(slices.Clone(s.Records), func(r models.ValueRecord) bool { return r.PositionID == id })
	return State{Positions: positions, Records: records}, nil
}

// SubmitBilan replaces every record dated date with one record per known
// position present in amounts, in position order. Unknown ids are ignored.
func SubmitBilan(s State, date string, amounts map[string]int64) State {
	records := slices.DeleteFunc(slices.Clone(s.Records), func(r models.ValueRecord) bool { return r.Date == date })
	for _, p := range s.Positions {
		amount, ok := amounts[p.ID]
		if !ok {
			continue
		}
		records = append(records, models.ValueRecord{Date: date, PositionID: p.ID, Amount: amount})
	}
	return State{Positions: s.Positions, Records: records}
}

// DeleteBilan removes every record dated date.
func DeleteBilan(s State, date string) (State, error) {
	if !slices.ContainsFunc(s.Records, func(r models.ValueRecord) bool { return r.Date == date }) {
		return s, ErrBilanNotFound
	}
	records := slices.DeleteFunc(slices.Clone(s.Records), func(r models.ValueRecord) bool { return r.Date == date })
	return State{Positions: s.Positions, Records: records}, nil
}

// BilanAmounts returns the recorded amount of each position on date, as
// used to prefill the entry form. Duplicates are summed.
func BilanAmounts(s State, date string) map[string]int64 {
	amounts := make(map[string]int64)
	for _, r := range s.Records {
		if r.Date == date {
			amounts[r.PositionID] += r.Amount
		}
	}
	return amounts
}

// LatestRecord returns the most recent record of a position.
func LatestRecord(s State, positionID string) (models.ValueRecord, bool) {
	return bilan.Latest(s.Records, positionID)
}

// ActivePositions returns the positions offered for a new bilan.
func ActivePositions(s State) []models.Position {
	active := make([]models.Position, 0, len(s.Positions))
	for _, p := range s.Positions {
		if p.Active {
			active = append(active, p)
		}
	}
	return active
}

// BilanDates returns the distinct record dates, most recent first.
func BilanDates(s State) []string {
	return bilan.Dates(s.Records)
}
