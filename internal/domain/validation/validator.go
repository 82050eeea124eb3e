// Package validation holds the stateless checks applied to raw contact field
// values.
package validation

import (
	"regexp"
	"strings"

	"mvz_quote/internal/domain/entities"
)

// Kind is the declared input kind of a field.
type Kind string

const (
	KindText  Kind = "text"
	KindEmail Kind = "email"
	KindTel   Kind = "tel"
)

// Error codes attached to failed fields.
const (
	CodeRequired = "required"
	CodeEmail    = "email"
	CodePhone    = "phone"
)

// NationalPrefix is the country calling code assumed for local numbers.
const NationalPrefix = "386"

var (
	emailPattern = regexp.MustCompile(`^[^\s\p{Z}@]+@[^\s\p{Z}@]+\.[^\s\p{Z}@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9\s\p{Z}\-()]{8,}$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

// Field declares how a contact input is validated.
type Field struct {
	Name     entities.ContactField
	Kind     Kind
	Required bool
}

// ContactSchema describes the contact step of the form.
var ContactSchema = []Field{
	{Name: entities.ContactName, Kind: KindText, Required: true},
	{Name: entities.ContactEmail, Kind: KindEmail, Required: true},
	{Name: entities.ContactPhone, Kind: KindTel, Required: true},
	{Name: entities.ContactAddress, Kind: KindText},
	{Name: entities.ContactMessage, Kind: KindText},
}

// FieldFor returns the schema entry of a contact field.
func FieldFor(name entities.ContactField) (Field, bool) {
	for _, f := range ContactSchema {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// FieldError is a failed check on one field. Message is filled in by the
// caller for presentation.
type FieldError struct {
	Field   entities.ContactField `json:"field"`
	Code    string                `json:"code"`
	Message string                `json:"message,omitempty"`
}

// IsPresent fails for empty and whitespace-only values.
func IsPresent(value string) bool {
	return strings.TrimSpace(value) != ""
}

func IsValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}

func IsValidPhone(value string) bool {
	return phonePattern.MatchString(strings.TrimSpace(value))
}

// Check validates one raw value against its field declaration. Shape checks
// only run on non-empty values, so optional fields may stay blank.
func Check(f Field, raw string) (FieldError, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		if f.Required {
			return FieldError{Field: f.Name, Code: CodeRequired}, false
		}
		return FieldError{}, true
	}
	switch f.Kind {
	case KindEmail:
		if !IsValidEmail(value) {
			return FieldError{Field: f.Name, Code: CodeEmail}, false
		}
	case KindTel:
		if !IsValidPhone(value) {
			return FieldError{Field: f.Name, Code: CodePhone}, false
		}
	}
	return FieldError{}, true
}

// CheckContact runs every required field of the schema and returns the
// failures in form order.
func CheckContact(c entities.ContactInfo) []FieldError {
	var errs []FieldError
	for _, f := range ContactSchema {
		if !f.Required {
			continue
		}
		if fe, ok := Check(f, c.Get(f.Name)); !ok {
			errs = append(errs, fe)
		}
	}
	return errs
}

// NormalizePhone rewrites a phone number into international form. All
// non-digits are dropped; numbers already carrying the national prefix get a
// leading +, a leading trunk 0 becomes +386, anything else is prefixed with
// +386. Applying it twice gives the same result as applying it once.
func NormalizePhone(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")
	switch {
	case digits == "":
		return ""
	case strings.HasPrefix(digits, NationalPrefix):
		return "+" + digits
	case strings.HasPrefix(digits, "0"):
		return "+" + NationalPrefix + digits[1:]
	default:
		return "+" + NationalPrefix + digits
	}
}
