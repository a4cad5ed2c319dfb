package definition

import (
	"errors"
	"fmt"
)

// ErrParse is matched by every *ParseError.
var ErrParse = errors.New("definition: parse failed")

// ParseError reports a definition that could not be read, validated or
// decoded.
type ParseError struct {
	Location string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Location == "" {
		return fmt.Sprintf("definition: parse: %v", e.Err)
	}
	return fmt.Sprintf("definition: parse %s: %v", e.Location, e.Err)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

func parseError(location string, err error) error {
	return &ParseError{Location: location, Err: err}
}
