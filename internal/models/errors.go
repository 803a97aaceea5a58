package models

import (
	"errors"
	"fmt"
)

// ErrUnknownPersona matches any *UnknownPersonaError via errors.Is.
var ErrUnknownPersona = errors.New("unknown persona")

// UnknownPersonaError is returned when an id outside the persona set is requested.
type UnknownPersonaError struct {
	ID string
}

func (e *UnknownPersonaError) Error() string {
	return fmt.Sprintf("unknown persona %q", e.ID)
}

func (e *UnknownPersonaError) Is(target error) bool {
	return target == ErrUnknownPersona
}
