package binder

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// AuthorizationHeader carries the wrapped HeaderSet for the JSON encodings.
const AuthorizationHeader = "Authorization"

// Encoding defines how a HeaderSet is written to an outbound request.
type Encoding int

const (
	// JSON wraps the HeaderSet as a JSON object in the Authorization header.
	JSON Encoding = iota
	// Base64JSON wraps the HeaderSet as base64-encoded JSON in the Authorization header.
	Base64JSON
	// Headers writes each HeaderSet entry as its own request header.
	Headers
)

func (e Encoding) String() string {
	switch e {
	case JSON:
		return "json"
	case Base64JSON:
		return "base64"
	case Headers:
		return "headers"
	}
	return fmt.Sprintf("Encoding(%d)", int(e))
}

// ParseEncoding parses json, base64 or headers (case-insensitive).
func ParseEncoding(value string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "json":
		return JSON, nil
	case "base64", "base64json":
		return Base64JSON, nil
	case "headers":
		return Headers, nil
	}
	return 0, fmt.Errorf("unsupported header encoding: %q", value)
}

// MarshalJSON returns the HeaderSet as a JSON object with sorted keys.
func (h *HeaderSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Map())
}

// Encode returns the Authorization header value for the JSON encodings.
func (h *HeaderSet) Encode(encoding Encoding) (string, error) {
	data, err := json.Marshal(h.Map())
	if err != nil {
		return "", err
	}
	switch encoding {
	case JSON:
		return string(data), nil
	case Base64JSON:
		return base64.StdEncoding.EncodeToString(data), nil
	}
	return "", fmt.Errorf("encoding %v does not produce a single header value", encoding)
}

// Apply writes the HeaderSet into header using encoding. With Headers every
// value must be a valid HTTP header field value, values are never rewritten.
func (h *HeaderSet) Apply(header http.Header, encoding Encoding) error {
	if encoding == Headers {
		keys := h.Keys()
		for _, name := range keys {
			if !httpguts.ValidHeaderFieldValue(h.values[name]) {
				return fmt.Errorf("%w: %v", ErrInvalidHeaderValue, name)
			}
		}
		for _, name := range keys {
			header.Set(name, h.values[name])
		}
		return nil
	}
	value, err := h.Encode(encoding)
	if err != nil {
		return err
	}
	header.Set(AuthorizationHeader, value)
	return nil
}
