package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tb2fst.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
freq_cutoff: 2
ignore_case: true
splitters: [";", ","]
record_markers: ["\\u"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.FreqCutoff != 2 {
		t.Errorf("FreqCutoff = %d, want 2", cfg.FreqCutoff)
	}
	if !cfg.IgnoreCase {
		t.Error("IgnoreCase = false, want true")
	}
	if !reflect.DeepEqual(cfg.Splitters, []string{";", ","}) {
		t.Errorf("Splitters = %v", cfg.Splitters)
	}
	if !reflect.DeepEqual(cfg.RecordMarkers, []string{`\u`}) {
		t.Errorf("RecordMarkers = %v", cfg.RecordMarkers)
	}

	// Omitted keys keep their defaults.
	if cfg.ReductionWindow != -1 {
		t.Errorf("ReductionWindow = %d, want -1", cfg.ReductionWindow)
	}
	if cfg.SegmentSeparator != " " {
		t.Errorf("SegmentSeparator = %q, want %q", cfg.SegmentSeparator, " ")
	}
}

func TestLoad_UnknownKey(t *testing.T) {
	path := writeConfig(t, "freq_cutof: 2\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeConfig(t, "")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("empty file should yield defaults, got %+v", cfg)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.ReductionWindow != -1 {
		t.Errorf("ReductionWindow = %d, want -1", cfg.ReductionWindow)
	}
	if !reflect.DeepEqual(cfg.RecordMarkers, []string{`\id`, `\ref`}) {
		t.Errorf("RecordMarkers = %v", cfg.RecordMarkers)
	}
}
