package quote

import (
	"errors"
	"fmt"
	"testing"

	"mvz_quote/internal/domain/entities"
)

func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("item-%d", n)
	}
}

func TestStore_AddItemAppliesDefaults(t *testing.T) {
	s := NewStore(sequentialIDs())

	w := s.AddItem(entities.ItemTypeWindow)
	if w.Material != entities.MaterialPVC || w.Glass != entities.GlassDouble || w.Color != entities.ColorWhite || w.Quantity != 1 {
		t.Fatalf("unexpected window defaults: %+v", w)
	}
	if w.Width.IsProvided() || w.Height.IsProvided() {
		t.Fatalf("expected dimensions unset, got %+v", w)
	}

	d := s.AddItem(entities.ItemTypeDoor)
	if d.Material != entities.MaterialPVC || d.Glass != entities.GlassNone {
		t.Fatalf("unexpected door defaults: %+v", d)
	}
	b := s.AddItem(entities.ItemTypeBalconyDoor)
	if b.Material != entities.MaterialAluminum || b.Glass != entities.GlassNone {
		t.Fatalf("unexpected balcony defaults: %+v", b)
	}

	if s.Len() != 3 {
		t.Fatalf("expected 3 items, got %d", s.Len())
	}
	items := s.Items()
	if items[0].ID != w.ID || items[1].ID != d.ID || items[2].ID != b.ID {
		t.Fatalf("expected insertion order, got %+v", items)
	}
}

func TestStore_IDsAreNeverReused(t *testing.T) {
	ids := []string{"a", "a", "b", "a", "b", "c"}
	i := 0
	s := NewStore(func() string {
		id := ids[i]
		i++
		return id
	})

	first := s.AddItem(entities.ItemTypeWindow)
	s.RemoveItem(first.ID)
	second := s.AddItem(entities.ItemTypeWindow)
	s.Clear()
	third := s.AddItem(entities.ItemTypeDoor)

	if first.ID != "a" || second.ID != "b" || third.ID != "c" {
		t.Fatalf("expected a, b, c; got %s, %s, %s", first.ID, second.ID, third.ID)
	}
}

func TestStore_UpdateItem(t *testing.T) {
	tests := []struct {
		name   string
		field  ItemField
		value  string
		check  func(entities.LineItem) bool
		errIs  error
		change bool
	}{
		{"width", FieldWidth, "120", func(i entities.LineItem) bool { return i.Width.OrZero() == 120 }, nil, true},
		{"height decimal", FieldHeight, " 99.5 ", func(i entities.LineItem) bool { return i.Height.OrZero() == 99.5 }, nil, true},
		{"width unparseable clears", FieldWidth, "abc", func(i entities.LineItem) bool { return !i.Width.IsProvided() }, nil, true},
		{"width empty clears", FieldWidth, "", func(i entities.LineItem) bool { _, set := i.Width.Value(); return !set }, nil, true},
		{"negative width kept", FieldWidth, "-10", func(i entities.LineItem) bool { return i.Width.OrZero() == -10 }, nil, true},
		{"quantity", FieldQuantity, "3", func(i entities.LineItem) bool { return i.Quantity == 3 }, nil, true},
		{"quantity fractional truncates", FieldQuantity, "2.7", func(i entities.LineItem) bool { return i.Quantity == 2 }, nil, true},
		{"quantity garbage clears", FieldQuantity, "x", func(i entities.LineItem) bool { return i.Quantity == 0 }, nil, true},
		{"material", FieldMaterial, "wood", func(i entities.LineItem) bool { return i.Material == entities.MaterialWood }, nil, true},
		{"color", FieldColor, "Gray", func(i entities.LineItem) bool { return i.Color == entities.ColorGray }, nil, true},
		{"glass", FieldGlass, "Triple", func(i entities.LineItem) bool { return i.Glass == entities.GlassTriple }, nil, true},
		{"bad material", FieldMaterial, "Steel", nil, ErrInvalidFieldValue, false},
		{"bad glass", FieldGlass, "Quadruple", nil, ErrInvalidFieldValue, false},
		{"bad color", FieldColor, "Pink", nil, ErrInvalidFieldValue, false},
		{"unknown field", ItemField("depth"), "1", nil, ErrUnknownItemField, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(sequentialIDs())
			item := s.AddItem(entities.ItemTypeWindow)

			changed, err := s.UpdateItem(item.ID, tt.field, tt.value)
			if tt.errIs != nil {
				if !errors.Is(err, tt.errIs) {
					t.Fatalf("expected %v, got %v", tt.errIs, err)
				}
				got, _ := s.Get(item.ID)
				if got != item {
					t.Fatalf("expected item untouched after error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if changed != tt.change {
				t.Fatalf("expected changed=%v", tt.change)
			}
			got, _ := s.Get(item.ID)
			if !tt.check(got) {
				t.Fatalf("unexpected item after update: %+v", got)
			}
		})
	}
}

func TestStore_UpdateItemGlassIgnoredForDoors(t *testing.T) {
	s := NewStore(sequentialIDs())
	door := s.AddItem(entities.ItemTypeDoor)

	changed, err := s.UpdateItem(door.ID, FieldGlass, "Triple")
	if err != nil || changed {
		t.Fatalf("expected silent no-op, got changed=%v err=%v", changed, err)
	}
	got, _ := s.Get(door.ID)
	if got.Glass != entities.GlassNone {
		t.Fatalf("expected no glass on door, got %q", got.Glass)
	}
}

func TestStore_UnknownIDIsNoOp(t *testing.T) {
	s := NewStore(sequentialIDs())
	s.AddItem(entities.ItemTypeWindow)
	before := s.Items()

	changed, err := s.UpdateItem("missing", FieldWidth, "100")
	if err != nil || changed {
		t.Fatalf("expected no-op, got changed=%v err=%v", changed, err)
	}
	if s.RemoveItem("missing") {
		t.Fatalf("expected remove of unknown id to report false")
	}
	if after := s.Items(); len(after) != len(before) || after[0] != before[0] {
		t.Fatalf("store changed: %+v", after)
	}
}

func TestStore_ItemsReturnsCopy(t *testing.T) {
	s := NewStore(sequentialIDs())
	item := s.AddItem(entities.ItemTypeWindow)

	items := s.Items()
	items[0].Quantity = 9

	got, _ := s.Get(item.ID)
	if got.Quantity != 1 {
		t.Fatalf("expected store unaffected by caller mutation, got quantity %d", got.Quantity)
	}
}

func TestStore_TotalPriceAfterRemoval(t *testing.T) {
	s := NewStore(sequentialIDs())
	a := s.AddItem(entities.ItemTypeWindow)
	b := s.AddItem(entities.ItemTypeDoor)
	for _, id := range []string{a.ID, b.ID} {
		_, _ = s.UpdateItem(id, FieldWidth, "100")
		_, _ = s.UpdateItem(id, FieldHeight, "100")
	}

	s.RemoveItem(a.ID)
	sum := s.TotalPrice()
	if len(sum.Lines) != 1 || sum.Lines[0].ItemID != b.ID || sum.Lines[0].Position != 1 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	// door, pvc, 1m²: 300 * 1.0
	if sum.Total != 300 {
		t.Fatalf("expected total 300, got %v", sum.Total)
	}
}

func TestStore_MissingDimensions(t *testing.T) {
	s := NewStore(sequentialIDs())
	a := s.AddItem(entities.ItemTypeWindow)
	b := s.AddItem(entities.ItemTypeWindow)
	_, _ = s.UpdateItem(a.ID, FieldWidth, "100")
	_, _ = s.UpdateItem(a.ID, FieldHeight, "100")
	_, _ = s.UpdateItem(b.ID, FieldWidth, "0")
	_, _ = s.UpdateItem(b.ID, FieldHeight, "100")

	missing := s.MissingDimensions()
	if len(missing) != 1 || missing[0] != b.ID {
		t.Fatalf("expected only %s missing, got %v", b.ID, missing)
	}
}

func TestParseItemField(t *testing.T) {
	if f, err := ParseItemField(" Width "); err != nil || f != FieldWidth {
		t.Fatalf("expected width, got %q %v", f, err)
	}
	if _, err := ParseItemField("depth"); !errors.Is(err, ErrUnknownItemField) {
		t.Fatalf("expected ErrUnknownItemField, got %v", err)
	}
}
