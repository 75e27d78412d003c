package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput matches every InvalidInputError.
	ErrInvalidInput = errors.New("invalid input")
	// ErrMalformedRecord matches every MalformedRecordError.
	ErrMalformedRecord = errors.New("malformed record")
)

// InvalidInputError reports a word pair that a metric cannot score.
type InvalidInputError struct {
	Metric string
	Pair   WordPair
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: cannot score (%q, %q): %s", e.Metric, e.Pair.First, e.Pair.Second, e.Reason)
}

// Is lets errors.Is match ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// MalformedRecordError reports an input record that does not hold exactly two fields.
type MalformedRecordError struct {
	Line   int
	Fields int
	Err    error
}

func (e *MalformedRecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("record on line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("record on line %d: expected 2 fields, got %d", e.Line, e.Fields)
}

// Is lets errors.Is match ErrMalformedRecord.
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}
