// Package pricing computes line-item prices for window and door quotes.
//
// Every function here is pure: the same item always yields the same price and
// nothing is cached between calls.
package pricing

import (
	"strconv"

	"mvz_quote/internal/domain/entities"
)

// BaseRate returns the price per square metre for an item type before any
// material or glass multiplier.
func BaseRate(t entities.ItemType) float64 {
	switch t {
	case entities.ItemTypeWindow:
		return 150
	case entities.ItemTypeDoor:
		return 300
	case entities.ItemTypeBalconyDoor:
		return 400
	}
	return 0
}

func MaterialFactor(m entities.Material) float64 {
	switch m {
	case entities.MaterialPVC:
		return 1.0
	case entities.MaterialAluminum:
		return 1.5
	case entities.MaterialWood:
		return 2.0
	}
	return 1.0
}

// GlassFactor returns 1 for GlassNone so items without glass are unaffected.
func GlassFactor(g entities.Glass) float64 {
	switch g {
	case entities.GlassSingle:
		return 0.8
	case entities.GlassDouble:
		return 1.0
	case entities.GlassTriple:
		return 1.3
	}
	return 1.0
}

// BasePrice is the per-square-metre price of the item with its material and
// glass applied.
func BasePrice(item entities.LineItem) float64 {
	base := BaseRate(item.Type) * MaterialFactor(item.Material)
	if item.Glass.IsPresent() {
		base *= GlassFactor(item.Glass)
	}
	return base
}

// Area converts the item's dimensions from cm² to m². Missing or negative
// dimensions count as zero.
func Area(item entities.LineItem) float64 {
	w, h := item.Width.OrZero(), item.Height.OrZero()
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h / 10000
}

// EffectiveQuantity is the multiplier used for pricing; anything below one
// counts as a single unit.
func EffectiveQuantity(item entities.LineItem) int {
	if item.Quantity < 1 {
		return 1
	}
	return item.Quantity
}

// Price returns the non-negative price of a line item.
func Price(item entities.LineItem) float64 {
	return BasePrice(item) * Area(item) * float64(EffectiveQuantity(item))
}

// Line is one entry of a price breakdown. Position is 1-based and follows the
// order of the items passed to Summarize.
type Line struct {
	Position int               `json:"position"`
	ItemID   string            `json:"item_id"`
	Type     entities.ItemType `json:"type"`
	Price    float64           `json:"price"`
}

// Summary is a breakdown of item prices plus their sum.
type Summary struct {
	Lines []Line  `json:"lines"`
	Total float64 `json:"total"`
}

// Summarize prices every item in order.
func Summarize(items []entities.LineItem) Summary {
	s := Summary{Lines: make([]Line, 0, len(items))}
	for i, item := range items {
		p := Price(item)
		s.Lines = append(s.Lines, Line{
			Position: i + 1,
			ItemID:   item.ID,
			Type:     item.Type,
			Price:    p,
		})
		s.Total += p
	}
	return s
}

// FormatAmount renders a monetary value with exactly two fraction digits.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatEUR renders a monetary value the way item cards and documents show it.
func FormatEUR(v float64) string {
	return "€" + FormatAmount(v)
}
