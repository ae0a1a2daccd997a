package services

import (
	"errors"
	"strings"

	apperrors "github.com/guillaumevincent/monpatrimoine/internal/errors"
	"github.com/guillaumevincent/monpatrimoine/internal/models"
	"github.com/guillaumevincent/monpatrimoine/internal/state"
	"github.com/guillaumevincent/monpatrimoine/internal/store"
	"github.com/guillaumevincent/monpatrimoine/internal/uuid"
)

// positionService handles position-related business logic.
type positionService struct {
	ledger *store.Ledger
}

// NewPositionService creates a new PositionServicer.
func NewPositionService(ledger *store.Ledger) PositionServicer {
	return &positionService{ledger: ledger}
}

// CreatePosition adds a new active position.
func (s *positionService) CreatePosition(label string, category models.Category) (*PositionDetail, error) {
	label, err := validatePosition(label, category)
	if err != nil {
		return nil, err
	}

	p := models.Position{
		ID:       uuid.New(),
		Label:    label,
		Category: category,
		Active:   true,
	}
	next, err := s.ledger.Update(func(st state.State) (state.State, error) {
		return state.AddPosition(st, p), nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return detail(next, p), nil
}

// ListPositions returns positions in creation order. With activeOnly only the
// positions offered for a new bilan are returned.
func (s *positionService) ListPositions(activeOnly bool) ([]PositionDetail, error) {
	st := s.ledger.Load()

	positions := st.Positions
	if activeOnly {
		positions = state.ActivePositions(st)
	}

	details := make([]PositionDetail, 0, len(positions))
	for _, p := range positions {
		details = append(details, *detail(st, p))
	}
	return details, nil
}

// GetPosition returns a position by ID.
func (s *positionService) GetPosition(id string) (*PositionDetail, error) {
	st := s.ledger.Load()
	p, ok := st.Position(id)
	if !ok {
		return nil, apperrors.ErrPositionNotFound
	}
	return detail(st, p), nil
}

// UpdatePosition changes the label and category of a position.
func (s *positionService) UpdatePosition(id, label string, category models.Category) (*PositionDetail, error) {
	label, err := validatePosition(label, category)
	if err != nil {
		return nil, err
	}

	next, err := s.ledger.Update(func(st state.State) (state.State, error) {
		return state.UpdatePosition(st, id, label, category)
	})
	if err != nil {
		return nil, mapStateError(err)
	}
	p, _ := next.Position(id)
	return detail(next, p), nil
}

// TogglePositionActive flips whether a position is offered for new bilans.
func (s *positionService) TogglePositionActive(id string) (*PositionDetail, error) {
	next, err := s.ledger.Update(func(st state.State) (state.State, error) {
		return state.TogglePositionActive(st, id)
	})
	if err != nil {
		return nil, mapStateError(err)
	}
	p, _ := next.Position(id)
	return detail(next, p), nil
}

// DeletePosition removes a position and all of its value records.
func (s *positionService) DeletePosition(id string) error {
	_, err := s.ledger.Update(func(st state.State) (state.State, error) {
		return state.DeletePosition(st, id)
	})
	if err != nil {
		return mapStateError(err)
	}
	return nil
}

func validatePosition(label string, category models.Category) (string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "label is required")
	}
	if !category.Valid() {
		return "", apperrors.ErrInvalidCategory
	}
	return label, nil
}

func detail(st state.State, p models.Position) *PositionDetail {
	d := &PositionDetail{Position: p, Icon: p.Category.Icon()}
	if r, ok := state.LatestRecord(st, p.ID); ok {
		d.Latest = &r
	}
	return d
}

// mapStateError converts errors of the state package to AppErrors.
func mapStateError(err error) error {
	switch {
	case errors.Is(err, state.ErrPositionNotFound):
		return apperrors.ErrPositionNotFound
	case errors.Is(err, state.ErrBilanNotFound):
		return apperrors.ErrBilanNotFound
	default:
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}
