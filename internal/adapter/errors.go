package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode marks text that is not valid UTF-8.
	ErrDecode = errors.New("poematic: invalid UTF-8 text")
	// ErrNoCorpus is returned when no corpus path was given.
	ErrNoCorpus = errors.New("poematic: no corpus file given")
)

// DecodeError reports the source and 1-based line of undecodable text.
type DecodeError struct {
	Source string
	Line   int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, ErrDecode)
}

// Unwrap lets errors.Is match ErrDecode.
func (e *DecodeError) Unwrap() error {
	return ErrDecode
}
