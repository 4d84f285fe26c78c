package mapper

import (
	"errors"
	"fmt"

	"shape-mapper/shape"
)

var (
	ErrNilContainer = errors.New("container must not be nil")
	ErrNilFunc      = errors.New("mapping function must not be nil")
	ErrNoContainers = errors.New("at least one container is required")
	ErrBadTemplate  = errors.New("template must declare a known kind and a length of at least 1")
)

// ElementError reports that the user function failed for one element.
// The whole call aborts; no partial result is returned.
type ElementError struct {
	Index int
	Label string
	Err   error
}

func (e *ElementError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("element %d (%q): %v", e.Index, e.Label, e.Err)
	}

	return fmt.Sprintf("element %d: %v", e.Index, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }

// TypeMismatchError reports a result that does not conform to the declared
// template of the typed mapper.
type TypeMismatchError struct {
	Index    int
	Expected shape.Template
	Actual   shape.Descriptor
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("element %d: expected %s, got %s", e.Index, e.Expected, e.Actual)
}
