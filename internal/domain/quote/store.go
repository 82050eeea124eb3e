// Package quote holds the state of one quote being built: its line items,
// contact details, wizard step and notifications.
package quote

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"mvz_quote/internal/domain/entities"
	"mvz_quote/internal/domain/pricing"
)

var (
	ErrUnknownItemField  = errors.New("unknown item field")
	ErrInvalidFieldValue = errors.New("invalid field value")
)

// ItemField names an editable attribute of a line item.
type ItemField string

const (
	FieldWidth    ItemField = "width"
	FieldHeight   ItemField = "height"
	FieldMaterial ItemField = "material"
	FieldGlass    ItemField = "glass"
	FieldColor    ItemField = "color"
	FieldQuantity ItemField = "quantity"
)

var ItemFields = []ItemField{FieldWidth, FieldHeight, FieldMaterial, FieldGlass, FieldColor, FieldQuantity}

func ParseItemField(s string) (ItemField, error) {
	f := ItemField(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ItemFields {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownItemField, s)
}

// IDGenerator produces item identifiers.
type IDGenerator func() string

// Store is the ordered collection of line items of a quote. Item IDs are
// never reused, even after removal or Clear.
type Store struct {
	items  []entities.LineItem
	issued map[string]struct{}
	newID  IDGenerator
}

func NewStore(newID IDGenerator) *Store {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Store{issued: make(map[string]struct{}), newID: newID}
}

// AddItem appends a new item of type t with its defaults applied.
func (s *Store) AddItem(t entities.ItemType) entities.LineItem {
	id := s.newID()
	for {
		if _, used := s.issued[id]; !used {
			break
		}
		id = s.newID()
	}
	s.issued[id] = struct{}{}

	item := entities.NewLineItem(id, t)
	s.items = append(s.items, item)
	return item
}

// UpdateItem sets one field of the item with the given id from its raw form
// value. Unknown ids are ignored. Numeric fields that do not parse become
// unset; enum fields must name a known value. The glass field only applies
// to windows. The returned flag reports whether an item was changed.
func (s *Store) UpdateItem(id string, field ItemField, value string) (bool, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	item := s.items[idx]
	raw := strings.TrimSpace(value)

	switch field {
	case FieldWidth:
		item.Width = parseDimension(raw)
	case FieldHeight:
		item.Height = parseDimension(raw)
	case FieldQuantity:
		item.Quantity = parseQuantity(raw)
	case FieldMaterial:
		m, err := entities.ParseMaterial(raw)
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrInvalidFieldValue, err)
		}
		item.Material = m
	case FieldColor:
		c, err := entities.ParseColor(raw)
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrInvalidFieldValue, err)
		}
		item.Color = c
	case FieldGlass:
		if !item.Type.HasGlass() {
			return false, nil
		}
		g, err := entities.ParseGlass(raw)
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrInvalidFieldValue, err)
		}
		item.Glass = g
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownItemField, field)
	}

	s.items[idx] = item
	return true, nil
}

// RemoveItem deletes the item with the given id and reports whether it existed.
func (s *Store) RemoveItem(id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return true
}

// Items returns a copy of the items in insertion order.
func (s *Store) Items() []entities.LineItem {
	out := make([]entities.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Get(id string) (entities.LineItem, bool) {
	if idx := s.indexOf(id); idx >= 0 {
		return s.items[idx], true
	}
	return entities.LineItem{}, false
}

func (s *Store) Len() int {
	return len(s.items)
}

// Clear drops every item. Issued ids stay reserved.
func (s *Store) Clear() {
	s.items = nil
}

// TotalPrice prices every item in insertion order.
func (s *Store) TotalPrice() pricing.Summary {
	return pricing.Summarize(s.items)
}

// MissingDimensions returns the ids of items lacking width or height.
func (s *Store) MissingDimensions() []string {
	var ids []string
	for _, item := range s.items {
		if !item.HasDimensions() {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

func (s *Store) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func parseDimension(raw string) entities.Dimension {
	if raw == "" {
		return entities.Dimension{}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return entities.Dimension{}
	}
	return entities.DimensionOf(v)
}

// parseQuantity accepts whole numbers; fractional input is truncated and
// anything else clears the field.
func parseQuantity(raw string) int {
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > math.MaxInt32 {
		return 0
	}
	return int(v)
}
