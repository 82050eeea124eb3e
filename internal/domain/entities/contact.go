package entities

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownContactField = errors.New("unknown contact field")

// ContactField names one of the customer contact inputs.
type ContactField string

const (
	ContactName    ContactField = "name"
	ContactEmail   ContactField = "email"
	ContactPhone   ContactField = "phone"
	ContactAddress ContactField = "address"
	ContactMessage ContactField = "message"
)

// ContactFields lists the contact inputs in form order.
var ContactFields = []ContactField{ContactName, ContactEmail, ContactPhone, ContactAddress, ContactMessage}

func ParseContactField(s string) (ContactField, error) {
	f := ContactField(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ContactFields {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownContactField, s)
}

// ContactInfo holds the raw contact values as the customer typed them.
type ContactInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Message string `json:"message"`
}

func (c ContactInfo) Get(f ContactField) string {
	switch f {
	case ContactName:
		return c.Name
	case ContactEmail:
		return c.Email
	case ContactPhone:
		return c.Phone
	case ContactAddress:
		return c.Address
	case ContactMessage:
		return c.Message
	}
	return ""
}

// With returns a copy of c with field f set to value.
func (c ContactInfo) With(f ContactField, value string) ContactInfo {
	switch f {
	case ContactName:
		c.Name = value
	case ContactEmail:
		c.Email = value
	case ContactPhone:
		c.Phone = value
	case ContactAddress:
		c.Address = value
	case ContactMessage:
		c.Message = value
	}
	return c
}

// Values returns the non-empty fields keyed by field name.
func (c ContactInfo) Values() map[string]string {
	out := make(map[string]string, len(ContactFields))
	for _, f := range ContactFields {
		if v := c.Get(f); v != "" {
			out[string(f)] = v
		}
	}
	return out
}

func (c ContactInfo) IsZero() bool {
	return c == ContactInfo{}
}
