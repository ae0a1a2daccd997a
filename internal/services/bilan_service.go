package services

import (
	"slices"

	"github.com/guillaumevincent/monpatrimoine/internal/bilan"
	apperrors "github.com/guillaumevincent/monpatrimoine/internal/errors"
	"github.com/guillaumevincent/monpatrimoine/internal/models"
	"github.com/guillaumevincent/monpatrimoine/internal/state"
	"github.com/guillaumevincent/monpatrimoine/internal/store"
)

// bilanService handles entering, editing and deleting bilans.
type bilanService struct {
	ledger *store.Ledger
}

// NewBilanService creates a new BilanServicer.
func NewBilanService(ledger *store.Ledger) BilanServicer {
	return &bilanService{ledger: ledger}
}

// ListBilanDates returns the stored bilan dates, most recent first.
func (s *bilanService) ListBilanDates() ([]string, error) {
	return state.BilanDates(s.ledger.Load()), nil
}

// GetBilanForm returns the prefill of the entry form for date.
func (s *bilanService) GetBilanForm(date string) (*BilanForm, error) {
	st := s.ledger.Load()
	key, err := resolveDate(st, date)
	if err != nil {
		return nil, err
	}
	return form(st, key), nil
}

// SubmitBilan replaces the bilan of date with amounts, keyed by position ID.
// Amounts of unknown positions are ignored.
func (s *bilanService) SubmitBilan(date string, amounts map[string]int64) (*BilanForm, error) {
	key, err := bilan.NormalizeDate(date)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidDate, err.Error())
	}

	next, err := s.ledger.Update(func(st state.State) (state.State, error) {
		return state.SubmitBilan(st, key, amounts), nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return form(next, key), nil
}

// DeleteBilan removes every record of date and returns the stored date that
// was deleted.
func (s *bilanService) DeleteBilan(date string) (string, error) {
	var key string
	_, err := s.ledger.Update(func(st state.State) (state.State, error) {
		var err error
		if key, err = resolveDate(st, date); err != nil {
			return st, err
		}
		return state.DeleteBilan(st, key)
	})
	if err != nil {
		return "", mapAnyError(err)
	}
	return key, nil
}

// resolveDate returns the stored form of date. A date string already present
// in the records is used as is, so that bilans imported with another layout
// stay reachable.
func resolveDate(st state.State, date string) (string, error) {
	if slices.Contains(state.BilanDates(st), date) {
		return date, nil
	}
	key, err := bilan.NormalizeDate(date)
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidDate, err.Error())
	}
	return key, nil
}

func form(st state.State, date string) *BilanForm {
	amounts := state.BilanAmounts(st, date)

	positions := make([]models.Position, 0, len(st.Positions))
	for _, p := range st.Positions {
		if _, recorded := amounts[p.ID]; p.Active || recorded {
			positions = append(positions, p)
		}
	}

	return &BilanForm{
		Date:      date,
		Exists:    len(amounts) > 0,
		Positions: positions,
		Amounts:   amounts,
	}
}

// mapAnyError passes AppErrors through and maps everything else.
func mapAnyError(err error) error {
	if _, ok := err.(*apperrors.AppError); ok {
		return err
	}
	return mapStateError(err)
}
