package domain

import (
	"cmp"
	"fmt"
	"slices"

	m "github.com/mouse-blink/poematic/internal/model"
)

// Hider replaces randomly chosen words of a line with blanks.
type Hider interface {
	Hide(line m.Line, count int) (m.Hidden, error)
}

type hider struct {
	sampler Sampler
}

// NewHider creates a Hider drawing its selections from sampler.
func NewHider(sampler Sampler) Hider {
	return &hider{sampler: sampler}
}

// Hide blanks min(count, eligible) words of line. Hidden words are returned in
// reading order. A line without eligible words comes back unchanged.
func (h *hider) Hide(line m.Line, count int) (m.Hidden, error) {
	if count < 0 {
		return m.Hidden{}, fmt.Errorf("%w: %d", ErrInvalidHideCount, count)
	}

	eligible := EligibleWords(line)

	k := min(count, len(eligible))
	if k == 0 {
		return m.Hidden{Display: line}, nil
	}

	picks := h.sampler.Sample(len(eligible), k)
	if err := validateSample(picks, len(eligible), k); err != nil {
		return m.Hidden{}, err
	}

	chosen := make([]m.Word, 0, k)
	for _, p := range picks {
		chosen = append(chosen, eligible[p])
	}

	slices.SortFunc(chosen, func(a, b m.Word) int {
		return cmp.Compare(a.Index, b.Index)
	})

	// Rewrite back to front so the spans of earlier words stay valid.
	display := []byte(line)
	for i := len(chosen) - 1; i >= 0; i-- {
		w := chosen[i]
		display = replaceRange(display, w.CoreStart, w.CoreEnd, w.Blank())
	}

	return m.Hidden{Display: m.Line(display), Words: chosen}, nil
}

func validateSample(picks []int, n, k int) error {
	if len(picks) != k {
		return fmt.Errorf("%w: got %d indices, want %d", ErrBadSample, len(picks), k)
	}

	seen := make(map[int]struct{}, k)
	for _, p := range picks {
		if p < 0 || p >= n {
			return fmt.Errorf("%w: index %d out of range [0, %d)", ErrBadSample, p, n)
		}

		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: index %d selected twice", ErrBadSample, p)
		}

		seen[p] = struct{}{}
	}

	return nil
}

func replaceRange(content []byte, start, end int, replacement string) []byte {
	if start < 0 || end < start || end > len(content) {
		return content
	}

	out := make([]byte, 0, len(content)-(end-start)+len(replacement))
	out = append(out, content[:start]...)
	out = append(out, replacement...)
	out = append(out, content[end:]...)

	return out
}
