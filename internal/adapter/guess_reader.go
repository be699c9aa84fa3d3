package adapter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// GuessReader supplies the user's answers one line at a time.
type GuessReader interface {
	// ReadGuess blocks until a full line is available. It returns io.EOF once
	// the input is exhausted.
	ReadGuess() (string, error)
}

// LineGuessReader reads guesses from a line-oriented stream such as stdin.
type LineGuessReader struct {
	r      *bufio.Reader
	source string
	line   int
}

// NewLineGuessReader wraps r. source names the stream in decode errors.
func NewLineGuessReader(r io.Reader, source string) *LineGuessReader {
	return &LineGuessReader{r: bufio.NewReader(r), source: source}
}

// ReadGuess returns the next input line without its line ending and
// surrounding whitespace.
func (g *LineGuessReader) ReadGuess() (string, error) {
	raw, err := g.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read %s: %w", g.source, err)
	}

	if raw == "" && err != nil {
		return "", io.EOF
	}

	g.line++

	if !utf8.ValidString(raw) {
		return "", &DecodeError{Source: g.source, Line: g.line}
	}

	return strings.TrimSpace(raw), nil
}
