package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownItemType = errors.New("unknown item type")
	ErrUnknownMaterial = errors.New("unknown material")
	ErrUnknownGlass    = errors.New("unknown glass")
	ErrUnknownColor    = errors.New("unknown color")
)

// ItemType is the product family of a line item. It never changes after the
// item is created.
type ItemType string

const (
	ItemTypeWindow      ItemType = "window"
	ItemTypeDoor        ItemType = "door"
	ItemTypeBalconyDoor ItemType = "balcony"
)

// ItemTypes lists every item type in catalogue order.
var ItemTypes = []ItemType{ItemTypeWindow, ItemTypeDoor, ItemTypeBalconyDoor}

func ParseItemType(s string) (ItemType, error) {
	switch t := ItemType(strings.ToLower(strings.TrimSpace(s))); t {
	case ItemTypeWindow, ItemTypeDoor, ItemTypeBalconyDoor:
		return t, nil
	case "balcony_door", "balconydoor":
		return ItemTypeBalconyDoor, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownItemType, s)
}

// DefaultMaterial is PVC for windows and doors, aluminum for balcony doors.
func (t ItemType) DefaultMaterial() Material {
	switch t {
	case ItemTypeBalconyDoor:
		return MaterialAluminum
	default:
		return MaterialPVC
	}
}

// HasGlass reports whether items of this type carry a glass option.
func (t ItemType) HasGlass() bool {
	return t == ItemTypeWindow
}

type Material string

const (
	MaterialPVC      Material = "PVC"
	MaterialAluminum Material = "Aluminum"
	MaterialWood     Material = "Wood"
)

var Materials = []Material{MaterialPVC, MaterialAluminum, MaterialWood}

func ParseMaterial(s string) (Material, error) {
	for _, m := range Materials {
		if strings.EqualFold(strings.TrimSpace(s), string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMaterial, s)
}

// Glass is the glazing option of a window. GlassNone marks items that have no
// glass option at all.
type Glass string

const (
	GlassNone   Glass = ""
	GlassSingle Glass = "Single"
	GlassDouble Glass = "Double"
	GlassTriple Glass = "Triple"
)

var Glasses = []Glass{GlassSingle, GlassDouble, GlassTriple}

func ParseGlass(s string) (Glass, error) {
	for _, g := range Glasses {
		if strings.EqualFold(strings.TrimSpace(s), string(g)) {
			return g, nil
		}
	}
	return GlassNone, fmt.Errorf("%w: %q", ErrUnknownGlass, s)
}

func (g Glass) IsPresent() bool {
	return g != GlassNone
}

type Color string

const (
	ColorWhite Color = "White"
	ColorBrown Color = "Brown"
	ColorBlack Color = "Black"
	ColorGray  Color = "Gray"
)

var Colors = []Color{ColorWhite, ColorBrown, ColorBlack, ColorGray}

func ParseColor(s string) (Color, error) {
	for _, c := range Colors {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// Dimension is a measurement in centimetres that may not have been entered yet.
//
// Zero-default policy: an unset dimension reads as 0 wherever a number is
// needed, so an item without dimensions prices at 0 instead of failing.
type Dimension struct {
	value float64
	set   bool
}

func DimensionOf(cm float64) Dimension {
	return Dimension{value: cm, set: true}
}

// Value returns the stored number and whether one was entered.
func (d Dimension) Value() (float64, bool) {
	return d.value, d.set
}

func (d Dimension) OrZero() float64 {
	if !d.set {
		return 0
	}
	return d.value
}

// IsProvided reports whether the dimension was entered and is non-zero, which
// is what the line-item step requires before the review can be opened.
func (d Dimension) IsProvided() bool {
	return d.set && d.value != 0
}

func (d Dimension) MarshalJSON() ([]byte, error) {
	if !d.set {
		return []byte("null"), nil
	}
	return json.Marshal(d.value)
}

func (d *Dimension) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Dimension{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*d = DimensionOf(v)
	return nil
}

// Recommended input ranges. They are hints for clients and are not enforced.
const (
	MinDimensionCM = 50
	MaxDimensionCM = 300
	MinQuantity    = 1
	MaxQuantity    = 10
)

// LineItem is one requested window, door or balcony door.
type LineItem struct {
	ID       string    `json:"id"`
	Type     ItemType  `json:"type"`
	Width    Dimension `json:"width"`
	Height   Dimension `json:"height"`
	Material Material  `json:"material"`
	Glass    Glass     `json:"glass,omitempty"`
	Color    Color     `json:"color"`
	// Quantity of 0 means the field was cleared; pricing treats it as 1.
	Quantity int `json:"quantity"`
}

// NewLineItem returns an item of the given type with the type-dependent
// defaults applied.
func NewLineItem(id string, t ItemType) LineItem {
	item := LineItem{
		ID:       id,
		Type:     t,
		Material: t.DefaultMaterial(),
		Color:    ColorWhite,
		Quantity: 1,
	}
	if t.HasGlass() {
		item.Glass = GlassDouble
	}
	return item
}

// HasDimensions reports whether both width and height were provided.
func (i LineItem) HasDimensions() bool {
	return i.Width.IsProvided() && i.Height.IsProvided()
}
