package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidFieldValue = errors.New("value must be a string, number or null")

// ClientKeyHeader identifies the browser a session belongs to, for contact
// snapshots.
const ClientKeyHeader = "X-Client-Key"

type StartSessionRequest struct {
	ClientKey string `json:"client_key"`
	Locale    string `json:"locale"`
}

// ResolveClientKey prefers the body value over the header.
func (r StartSessionRequest) ResolveClientKey(header string) string {
	if v := strings.TrimSpace(r.ClientKey); v != "" {
		return v
	}
	return strings.TrimSpace(header)
}

type ContactFieldRequest struct {
	Value json.RawMessage `json:"value" swaggertype:"string"`
}

func (r ContactFieldRequest) ResolveValue() (string, error) {
	return resolveValue(r.Value)
}

type AddItemRequest struct {
	Type string `json:"type" binding:"required"`
}

type UpdateItemRequest struct {
	Field string          `json:"field" binding:"required"`
	Value json.RawMessage `json:"value" swaggertype:"string"`
}

func (r UpdateItemRequest) ResolveValue() (string, error) {
	return resolveValue(r.Value)
}

// resolveValue accepts what a form input can carry: text, a number, or
// nothing at all (which clears the field).
func resolveValue(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64), nil
	}
	return "", ErrInvalidFieldValue
}
