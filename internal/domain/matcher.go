package domain

import (
	"strings"
	"sync"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	m "github.com/mouse-blink/poematic/internal/model"
)

// stripMarks holds reusable mark-stripping chains. A chain is stateful, so
// each Fold call takes its own.
var stripMarks = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	},
}

// Fold maps s to a lowercase ASCII form. Marks are stripped before
// transliteration so decomposable letters keep their base letter.
func Fold(s string) string {
	folded := cases.Fold().String(s)

	t := stripMarks.Get().(transform.Transformer)
	defer stripMarks.Put(t)

	stripped, _, err := transform.String(t, folded)
	if err != nil {
		stripped = folded
	}

	return strings.ToLower(unidecode.Unidecode(stripped))
}

// WordsEqual compares a and b ignoring case and diacritics.
func WordsEqual(a, b string) bool {
	return Fold(a) == Fold(b)
}

// GuessMatches reports whether guess names the hidden words in order.
// Guess and hidden words are compared by their cores, so edge punctuation in
// the guess does not matter.
func GuessMatches(guess string, hidden []m.Word, policy m.Policy) bool {
	guessWords := Tokenize(m.Line(guess))

	if policy != m.PolicyPrefix && len(guessWords) != len(hidden) {
		return false
	}

	for i, want := range hidden {
		got := ""
		if i < len(guessWords) {
			got = guessWords[i].Core
		}

		if !WordsEqual(want.Core, got) {
			return false
		}
	}

	return true
}
