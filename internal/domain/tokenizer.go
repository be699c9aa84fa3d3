package domain

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	m "github.com/mouse-blink/poematic/internal/model"
)

// Words yields the whitespace-delimited words of line in reading order.
// The sequence re-scans the line on every iteration.
func Words(line m.Line) iter.Seq[m.Word] {
	return func(yield func(m.Word) bool) {
		s := string(line)
		index := 0

		for i := 0; i < len(s); {
			r, size := utf8.DecodeRuneInString(s[i:])
			if unicode.IsSpace(r) {
				i += size
				continue
			}

			start := i
			for i < len(s) {
				r, size = utf8.DecodeRuneInString(s[i:])
				if unicode.IsSpace(r) {
					break
				}

				i += size
			}

			if !yield(newWord(s, index, start, i)) {
				return
			}

			index++
		}
	}
}

// Tokenize collects Words into a slice.
func Tokenize(line m.Line) []m.Word {
	var words []m.Word
	for w := range Words(line) {
		words = append(words, w)
	}

	return words
}

// EligibleWords returns the words of line that have a non-empty core.
func EligibleWords(line m.Line) []m.Word {
	var words []m.Word

	for w := range Words(line) {
		if w.Eligible() {
			words = append(words, w)
		}
	}

	return words
}

func newWord(s string, index, start, end int) m.Word {
	text := s[start:end]
	word := m.Word{
		Index:     index,
		Text:      text,
		Start:     start,
		End:       end,
		CoreStart: start,
		CoreEnd:   start,
	}

	lead := strings.IndexFunc(text, isAlphabetic)
	if lead < 0 {
		return word
	}

	trail := strings.LastIndexFunc(text, isAlphabetic)
	_, size := utf8.DecodeRuneInString(text[trail:])

	word.CoreStart = start + lead
	word.CoreEnd = start + trail + size
	word.Core = s[word.CoreStart:word.CoreEnd]

	return word
}

// isAlphabetic matches letters, letter numbers and Other_Alphabetic marks.
func isAlphabetic(r rune) bool {
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_Alphabetic)
}
