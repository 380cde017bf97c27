package discover

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestCorpusFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"story.txt", true},
		{"STORY.TXT", true},
		{"story.Txt", true},
		{"story.txt.bak", false},
		{"story.bak.txt", false},
		{"STORY.BAK.TXT", false},
		{"story.md", false},
		{"story", false},
		{"txt", false},
	}
	for _, tc := range tests {
		if got := CorpusFile(tc.name); got != tc.want {
			t.Errorf("CorpusFile(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("\\id x\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func TestExpandArgs_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		"b.txt",
		"A.TXT",
		"notes.md",
		"old.txt.bak",
		"old.bak.txt",
		filepath.Join("nested", "deep.txt"),
	)

	got, err := ExpandArgs([]string{dir})
	if err != nil {
		t.Fatalf("ExpandArgs: %v", err)
	}
	want := []string{
		filepath.Join(dir, "A.TXT"),
		filepath.Join(dir, "b.txt"),
	}
	if !slices.Equal(got, want) {
		t.Errorf("ExpandArgs = %v, want %v", got, want)
	}
}

func TestExpandArgs_FilesPassThrough(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "corpus.txt.gz", "notes.md")

	args := []string{
		filepath.Join(dir, "corpus.txt.gz"),
		filepath.Join(dir, "notes.md"),
	}
	got, err := ExpandArgs(args)
	if err != nil {
		t.Fatalf("ExpandArgs: %v", err)
	}
	if !slices.Equal(got, args) {
		t.Errorf("ExpandArgs = %v, want %v", got, args)
	}
}

func TestExpandArgs_Missing(t *testing.T) {
	if _, err := ExpandArgs([]string{filepath.Join(t.TempDir(), "absent.txt")}); err == nil {
		t.Fatal("ExpandArgs() error = nil, want error for missing input")
	}
}

func TestSet(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		filepath.Join("corpus", "a.txt"),
		"extra.txt",
	)
	corpusDir := filepath.Join(dir, "corpus")
	extra := filepath.Join(dir, "extra.txt")

	set, err := NewSet([]string{corpusDir, extra})
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}

	tests := []struct {
		path string
		want bool
	}{
		{filepath.Join(corpusDir, "a.txt"), true},
		{filepath.Join(corpusDir, "new.txt"), true},
		{filepath.Join(corpusDir, "new.txt.bak"), false},
		{filepath.Join(corpusDir, "notes.md"), false},
		{extra, true},
		{filepath.Join(dir, "unrelated.txt"), false},
	}
	for _, tc := range tests {
		if got := set.Contains(tc.path); got != tc.want {
			t.Errorf("Contains(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}

	roots := set.Roots()
	slices.Sort(roots)
	wantRoots := []string{dir, corpusDir}
	slices.Sort(wantRoots)
	if !slices.Equal(roots, wantRoots) {
		t.Errorf("Roots() = %v, want %v", roots, wantRoots)
	}
}

func TestSet_Missing(t *testing.T) {
	if _, err := NewSet([]string{filepath.Join(t.TempDir(), "absent")}); err == nil {
		t.Fatal("NewSet() error = nil, want error for missing input")
	}
}
