package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when either sequence is empty.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoAlignment means no cell scored above zero. It is an outcome, not a
	// failure: the accompanying Alignment is the zero value.
	ErrNoAlignment = errors.New("no positive-scoring local alignment")
)

// InputError reports which sequence (1 or 2) was rejected.
type InputError struct {
	Which int
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v: seq%d is empty", ErrInvalidInput, e.Which)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }
