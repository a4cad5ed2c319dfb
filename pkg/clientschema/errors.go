package clientschema

import (
	"errors"
	"fmt"

	"github.com/ThiRaBrTNK/Radarr/pkg/model"
)

var (
	// ErrInvalidArgument reports a nil schema, settings value or target.
	ErrInvalidArgument = errors.New("clientschema: invalid argument")
	// ErrMissingField reports a described property with no submitted field.
	ErrMissingField = errors.New("clientschema: missing field")
	// ErrFormat reports a malformed integer inside a list value.
	ErrFormat = errors.New("clientschema: malformed integer")
	// ErrTypeMismatch reports a field value whose kind cannot be assigned to
	// the property.
	ErrTypeMismatch = errors.New("clientschema: type mismatch")
)

// MissingFieldError names the property that had no matching field.
type MissingFieldError struct {
	Name string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("clientschema: no field named %q", e.Name)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// FormatError describes a list segment that is not an integer.
type FormatError struct {
	Field string
	Token string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("clientschema: field %q: %q is not an integer", e.Field, e.Token)
}

func (e *FormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFormat}
	}
	return []error{ErrFormat, e.Err}
}

// TypeMismatchError describes a value that cannot be assigned directly.
type TypeMismatchError struct {
	Field string
	Want  model.Kind
	Got   model.Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("clientschema: field %q: cannot assign %s value to %s property", e.Field, e.Got, e.Want)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}
