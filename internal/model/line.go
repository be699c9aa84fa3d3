// Package model defines the data structures shared by the recall trainer.
package model

import (
	"strings"
	"unicode/utf8"
)

// Path represents a file system path.
type Path string

// Line is one unit of text to be quizzed. Hiding words derives a new Line.
type Line string

// BlankRune is the placeholder rune used for hidden words.
const BlankRune = '_'

// Word is a whitespace-delimited token of a Line together with its byte spans.
//
// Line[Start:End] == Text and Line[CoreStart:CoreEnd] == Core always hold, and
// Start <= CoreStart <= CoreEnd <= End. Both spans fall on rune boundaries.
type Word struct {
	Index int    // position among the line's tokens
	Text  string // raw token, punctuation included
	Start int
	End   int

	// Core is Text with non-alphabetic runes trimmed from both ends.
	Core      string
	CoreStart int
	CoreEnd   int
}

// Eligible reports whether the word has anything to hide.
func (w Word) Eligible() bool {
	return w.Core != ""
}

// BlankLen is the number of blank runes that replace the word's core.
func (w Word) BlankLen() int {
	return utf8.RuneCountInString(w.Core)
}

// Blank returns the placeholder for the word's core.
func (w Word) Blank() string {
	return strings.Repeat(string(BlankRune), w.BlankLen())
}

// Hidden is the result of hiding words in a Line.
type Hidden struct {
	Display Line
	// Words are ordered by ascending Index.
	Words []Word
}

// Cores returns the hidden words' cores in reading order.
func (h Hidden) Cores() []string {
	cores := make([]string, 0, len(h.Words))
	for _, w := range h.Words {
		cores = append(cores, w.Core)
	}

	return cores
}
