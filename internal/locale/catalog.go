// Package locale renders the customer-facing text of the quote builder in
// Slovenian (the default) or English.
package locale

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"mvz_quote/internal/domain/entities"
)

// Message IDs.
const (
	MsgItemAdded         = "notify.item_added"
	MsgItemRemoved       = "notify.item_removed"
	MsgSubmitting        = "notify.submitting"
	MsgSubmitted         = "notify.submitted"
	MsgExportFailed      = "notify.export_failed"
	MsgContactInvalid    = "guard.contact_invalid"
	MsgNoItems           = "guard.no_items"
	MsgMissingDimensions = "guard.missing_dimensions"
	MsgFieldRequired     = "field.required"
	MsgFieldEmail        = "field.email"
	MsgFieldPhone        = "field.phone"

	MsgDocTitle        = "doc.title"
	MsgDocCustomer     = "doc.customer"
	MsgDocName         = "doc.name"
	MsgDocEmail        = "doc.email"
	MsgDocPhone        = "doc.phone"
	MsgDocAddress      = "doc.address"
	MsgDocMessage      = "doc.message"
	MsgDocItems        = "doc.items"
	MsgDocDimensions   = "doc.dimensions"
	MsgDocMaterial     = "doc.material"
	MsgDocGlass        = "doc.glass"
	MsgDocColor        = "doc.color"
	MsgDocQuantity     = "doc.quantity"
	MsgDocPrice        = "doc.price"
	MsgDocTotal        = "doc.total"
	MsgDocDate         = "doc.date"
	MsgDocValidity     = "doc.validity"
	MsgDocInstallation = "doc.installation"
)

// Supported languages, default first.
var Supported = []language.Tag{language.Slovenian, language.English}

func ItemTypeID(t entities.ItemType) string { return "item_type." + string(t) }
func MaterialID(m entities.Material) string { return "material." + string(m) }
func GlassID(g entities.Glass) string       { return "glass." + string(g) }
func ColorID(c entities.Color) string       { return "color." + string(c) }
func StepID(s entities.Step) string         { return "step." + s.String() }

// Catalog holds the compiled message bundle.
type Catalog struct {
	bundle  *i18n.Bundle
	matcher language.Matcher
}

func NewCatalog() (*Catalog, error) {
	bundle := i18n.NewBundle(Supported[0])
	if err := bundle.AddMessages(language.Slovenian, slovenian...); err != nil {
		return nil, fmt.Errorf("locale: slovenian catalogue: %w", err)
	}
	if err := bundle.AddMessages(language.English, english...); err != nil {
		return nil, fmt.Errorf("locale: english catalogue: %w", err)
	}
	return &Catalog{bundle: bundle, matcher: language.NewMatcher(Supported)}, nil
}

// MustCatalog is NewCatalog for package-level wiring; the catalogues are
// compiled in, so a failure is a programming error.
func MustCatalog() *Catalog {
	c, err := NewCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// Resolve maps any BCP 47 string or Accept-Language value to a supported
// base language code.
func (c *Catalog) Resolve(lang string) string {
	tag, _ := language.MatchStrings(c.matcher, lang)
	base, _ := tag.Base()
	return base.String()
}

// Localizer returns a localizer for lang, falling back to Slovenian.
func (c *Catalog) Localizer(lang string) *Localizer {
	resolved := c.Resolve(lang)
	return &Localizer{lang: resolved, loc: i18n.NewLocalizer(c.bundle, resolved)}
}

type Localizer struct {
	lang string
	loc  *i18n.Localizer
}

func (l *Localizer) Lang() string {
	return l.lang
}

// Text renders a message. Unknown IDs come back verbatim so a missing
// translation never breaks a response.
func (l *Localizer) Text(id string, data map[string]any) string {
	s, err := l.loc.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil || s == "" {
		return id
	}
	return s
}
