package binder

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDescriptor is returned when a field required by the selected mode is empty.
	ErrInvalidDescriptor = errors.New("invalid cluster descriptor")
	// ErrUnsupportedAuthMode is returned for a mode other than Token or Certificate.
	ErrUnsupportedAuthMode = errors.New("unsupported auth mode")
	// ErrInvalidHeaderValue is returned when a value cannot be sent as an individual HTTP header.
	ErrInvalidHeaderValue = errors.New("invalid header field value")
)

// DescriptorError reports the descriptor fields missing for a mode.
type DescriptorError struct {
	Mode    AuthMode
	Missing []string
}

func (e *DescriptorError) Error() string {
	return fmt.Sprintf("%v: %s required for %v auth", ErrInvalidDescriptor, strings.Join(e.Missing, ", "), e.Mode)
}

// Is matches ErrInvalidDescriptor.
func (e *DescriptorError) Is(target error) bool {
	return target == ErrInvalidDescriptor
}
