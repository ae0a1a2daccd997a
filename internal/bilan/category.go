package bilan

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/guillaumevincent/monpatrimoine/internal/models"
)

// Number is the element type of a per-category record.
type Number interface {
	~int64 | ~float64
}

// ByCategory holds one value per category. It marshals to a JSON object
// keyed by category name, in category order.
type ByCategory[T Number] [models.CategoryCount]T

// Amounts holds per-category totals in minor units.
type Amounts = ByCategory[int64]

// Percentages holds per-category percentages.
type Percentages = ByCategory[float64]

// Get returns the value for c.
func (b ByCategory[T]) Get(c models.Category) T {
	if !c.Valid() {
		return 0
	}
	return b[c]
}

// MarshalJSON implements json.Marshaler.
func (b ByCategory[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:", models.Category(i).String())
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler. Missing categories are zero.
func (b *ByCategory[T]) UnmarshalJSON(data []byte) error {
	var raw map[string]T
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = ByCategory[T]{}
	for name, v := range raw {
		c, err := models.ParseCategory(name)
		if err != nil {
			return err
		}
		b[c] = v
	}
	return nil
}
