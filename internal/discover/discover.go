// Package discover resolves command line arguments to corpus files and
// tracks which paths a run reads.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CorpusFile reports whether a directory entry looks like corpus text:
// a .txt suffix, case-insensitive, and not an editor backup.
func CorpusFile(name string) bool {
	lower := strings.ToLower(name)
	if !strings.HasSuffix(lower, ".txt") {
		return false
	}
	return !strings.Contains(lower, ".bak")
}

// ExpandArgs resolves arguments to input paths. Directory arguments
// expand to their immediate corpus files in name order; everything else
// passes through unfiltered.
func ExpandArgs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		fi, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", arg, err)
		}
		if !fi.IsDir() {
			paths = append(paths, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("reading directory %s: %w", arg, err)
		}
		for _, e := range entries {
			if e.IsDir() || !CorpusFile(e.Name()) {
				continue
			}
			paths = append(paths, filepath.Join(arg, e.Name()))
		}
	}
	return paths, nil
}

// Set records the file and directory arguments of a run so change
// notifications can be filtered to the paths the run actually reads.
type Set struct {
	files map[string]bool
	dirs  map[string]bool
}

// NewSet classifies arguments into explicit files and directories.
func NewSet(args []string) (*Set, error) {
	s := &Set{files: make(map[string]bool), dirs: make(map[string]bool)}
	for _, arg := range args {
		fi, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", arg, err)
		}
		if fi.IsDir() {
			s.dirs[filepath.Clean(arg)] = true
		} else {
			s.files[filepath.Clean(arg)] = true
		}
	}
	return s, nil
}

// Roots returns the directories to register with a file watcher: the
// directory arguments themselves plus the parents of explicit files.
// Watching parents keeps renames and recreations visible.
func (s *Set) Roots() []string {
	roots := make(map[string]bool, len(s.dirs)+len(s.files))
	for d := range s.dirs {
		roots[d] = true
	}
	for f := range s.files {
		roots[filepath.Dir(f)] = true
	}
	out := make([]string, 0, len(roots))
	for r := range roots {
		out = append(out, r)
	}
	return out
}

// Contains reports whether a changed path belongs to the run: an
// explicit file argument, or a corpus file inside a directory argument.
func (s *Set) Contains(path string) bool {
	path = filepath.Clean(path)
	if s.files[path] {
		return true
	}
	return s.dirs[filepath.Dir(path)] && CorpusFile(filepath.Base(path))
}
