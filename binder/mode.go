package binder

import (
	"fmt"
	"strings"
)

// AuthMode selects between bearer token and client certificate authentication.
type AuthMode int

const (
	// Token authenticates with a bearer token.
	Token AuthMode = iota + 1
	// Certificate authenticates with a client certificate and key.
	Certificate
)

// IsValid reports whether mode is one of the defined modes.
func (m AuthMode) IsValid() bool {
	return m == Token || m == Certificate
}

func (m AuthMode) String() string {
	switch m {
	case Token:
		return "token"
	case Certificate:
		return "cert"
	}
	return fmt.Sprintf("AuthMode(%d)", int(m))
}

// ParseAuthMode parses token, cert or certificate (case-insensitive).
func ParseAuthMode(value string) (AuthMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "token":
		return Token, nil
	case "cert", "certificate":
		return Certificate, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAuthMode, value)
}

// MarshalText implements encoding.TextMarshaler.
func (m AuthMode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAuthMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *AuthMode) UnmarshalText(text []byte) error {
	mode, err := ParseAuthMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
