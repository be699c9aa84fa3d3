package adapter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/poematic/internal/model"
)

// CorpusExt is the extension picked up when a directory is given as corpus.
const CorpusExt = ".txt"

// ExpandCorpus resolves corpus roots into files. A file is taken as is. A
// directory contributes its *.txt files, and a "dir/..." root also descends
// into subdirectories. Files named twice are kept once, at their first
// position.
func ExpandCorpus(roots ...m.Path) ([]m.Path, error) {
	seen := make(map[string]struct{})

	var files []m.Path

	add := func(path string) error {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}

		if _, ok := seen[abs]; ok {
			return nil
		}

		seen[abs] = struct{}{}
		files = append(files, m.Path(path))

		return nil
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(rootPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read corpus %s: %w", root, err)
		}

		if !info.IsDir() {
			if err := add(rootPath); err != nil {
				return nil, err
			}

			continue
		}

		err = filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if !recursive && path != rootPath {
					return filepath.SkipDir
				}

				return nil
			}

			if filepath.Ext(path) != CorpusExt {
				return nil
			}

			return add(path)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan corpus %s: %w", root, err)
		}
	}

	return files, nil
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	return filepath.Clean(rootStr), recursive, nil
}

func parseRootPath(root string) (path string, recursive bool) {
	if rest, ok := strings.CutSuffix(root, "/..."); ok {
		return rest, true
	}

	return root, false
}
