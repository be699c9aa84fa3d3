// Package adapter contains the file and input adapters for the poematic CLI.
package adapter

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/poematic/internal/model"
)

const defaultLoadConcurrency = 4

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CorpusAdapter loads the text to be drilled.
type CorpusAdapter interface {
	// Load reads every path and returns their lines in argument order.
	Load(paths ...m.Path) ([]m.Line, error)
}

// LocalCorpusAdapter reads corpus files from disk.
type LocalCorpusAdapter struct {
	concurrency int
}

// NewLocalCorpusAdapter constructs a LocalCorpusAdapter ready to be wired into
// the workflow.
func NewLocalCorpusAdapter() *LocalCorpusAdapter {
	return &LocalCorpusAdapter{concurrency: defaultLoadConcurrency}
}

// Load expands directory roots with ExpandCorpus and reads the files
// concurrently. Any unreadable or undecodable file fails the whole load.
func (a *LocalCorpusAdapter) Load(roots ...m.Path) ([]m.Line, error) {
	if len(roots) == 0 {
		return nil, ErrNoCorpus
	}

	paths, err := ExpandCorpus(roots...)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		return nil, ErrNoCorpus
	}

	results := make([][]m.Line, len(paths))

	var g errgroup.Group
	g.SetLimit(max(a.concurrency, 1))

	for i, path := range paths {
		g.Go(func() error {
			lines, err := a.loadFile(path)
			if err != nil {
				return err
			}

			results[i] = lines

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var lines []m.Line
	for _, r := range results {
		lines = append(lines, r...)
	}

	return lines, nil
}

func (a *LocalCorpusAdapter) loadFile(path m.Path) ([]m.Line, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus %s: %w", path, err)
	}

	return ParseCorpus(string(path), data)
}

// ParseCorpus splits data into trimmed, non-blank lines. A leading byte order
// mark is dropped. Invalid UTF-8 yields a *DecodeError naming source.
func ParseCorpus(source string, data []byte) ([]m.Line, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var lines []m.Line

	for i, raw := range strings.Split(string(data), "\n") {
		if !utf8.ValidString(raw) {
			return nil, &DecodeError{Source: source, Line: i + 1}
		}

		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		lines = append(lines, m.Line(line))
	}

	return lines, nil
}
