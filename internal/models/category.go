package models

import "fmt"

// Category classifies a position. The set is closed: every per-category
// structure in the application is a fixed-size array indexed by Category.
type Category uint8

const (
	CategoryCash Category = iota
	CategoryBond
	CategoryEquity
	CategoryExotic
	CategoryRealEstate
	CategoryDebt

	// CategoryCount is the number of categories.
	CategoryCount = int(CategoryDebt) + 1
)

var categoryNames = [CategoryCount]string{
	CategoryCash:       "cash",
	CategoryBond:       "bond",
	CategoryEquity:     "equity",
	CategoryExotic:     "exotic",
	CategoryRealEstate: "real_estate",
	CategoryDebt:       "debt",
}

var categoryIcons = [CategoryCount]string{
	CategoryCash:       "💵",
	CategoryBond:       "📊",
	CategoryEquity:     "📈",
	CategoryExotic:     "✨",
	CategoryRealEstate: "🏠",
	CategoryDebt:       "📉",
}

// Categories lists every category in display order.
func Categories() []Category {
	cs := make([]Category, CategoryCount)
	for i := range cs {
		cs[i] = Category(i)
	}
	return cs
}

// ParseCategory returns the category with the given name.
func ParseCategory(name string) (Category, error) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", name)
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool { return int(c) < CategoryCount }

// IsDebt reports whether c is the debt category.
func (c Category) IsDebt() bool { return c == CategoryDebt }

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return categoryNames[c]
}

// Icon returns the emoji shown next to the category.
func (c Category) Icon() string {
	if !c.Valid() {
		return ""
	}
	return categoryIcons[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", uint8(c))
	}
	return []byte(categoryNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
