package store

import (
	"fmt"

	"github.com/guillaumevincent/monpatrimoine/internal/models"
)

// The ledger keys keep the field and category names of the browser
// application that first wrote them, so its exports load unchanged.

var storedCategoryNames = [models.CategoryCount]string{
	models.CategoryCash:       "cash",
	models.CategoryBond:       "obligation",
	models.CategoryEquity:     "action",
	models.CategoryExotic:     "exotique",
	models.CategoryRealEstate: "immobilier",
	models.CategoryDebt:       "dette",
}

type storedCategory models.Category

func (c storedCategory) MarshalText() ([]byte, error) {
	if !models.Category(c).Valid() {
		return nil, fmt.Errorf("invalid category %d", uint8(c))
	}
	return []byte(storedCategoryNames[c]), nil
}

// UnmarshalText rejects unknown names, which makes the whole key unreadable.
func (c *storedCategory) UnmarshalText(text []byte) error {
	for i, name := range storedCategoryNames {
		if name == string(text) {
			*c = storedCategory(i)
			return nil
		}
	}
	return fmt.Errorf("unknown categorie %q", text)
}

type storedPosition struct {
	ID        string         `json:"id"`
	Label     string         `json:"label"`
	Categorie storedCategory `json:"categorie"`
	Active    bool           `json:"active"`
}

type storedValue struct {
	Date       string `json:"date"`
	PositionID string `json:"positionId"`
	Montant    int64  `json:"montant"`
}

func toStoredPositions(positions []models.Position) []storedPosition {
	out := make([]storedPosition, len(positions))
	for i, p := range positions {
		out[i] = storedPosition{ID: p.ID, Label: p.Label, Categorie: storedCategory(p.Category), Active: p.Active}
	}
	return out
}

func fromStoredPositions(stored []storedPosition) []models.Position {
	out := make([]models.Position, len(stored))
	for i, p := range stored {
		out[i] = models.Position{ID: p.ID, Label: p.Label, Category: models.Category(p.Categorie), Active: p.Active}
	}
	return out
}

func toStoredValues(records []models.ValueRecord) []storedValue {
	out := make([]storedValue, len(records))
	for i, r := range records {
		out[i] = storedValue{Date: r.Date, PositionID: r.PositionID, Montant: r.Amount}
	}
	return out
}

func fromStoredValues(stored []storedValue) []models.ValueRecord {
	out := make([]models.ValueRecord, len(stored))
	for i, v := range stored {
		out[i] = models.ValueRecord{Date: v.Date, PositionID: v.PositionID, Amount: v.Montant}
	}
	return out
}
