// Package config loads YAML run configuration for the command line
// tools. Flags override file values; file values override defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultName is the run file looked up in the working directory when no
// explicit path is given.
const DefaultName = "tb2fst.yaml"

// Config holds the settings a run file may override. Load fills the
// struct from Default first, so omitted keys keep their defaults.
type Config struct {
	FreqCutoff       int      `yaml:"freq_cutoff"`
	IgnoreCase       bool     `yaml:"ignore_case"`
	SkipIdenticals   bool     `yaml:"skip_identicals"`
	ReductionWindow  int      `yaml:"reduction_window"`
	Splitters        []string `yaml:"splitters"`
	SegmentSeparator string   `yaml:"segment_separator"`
	RecordMarkers    []string `yaml:"record_markers"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ReductionWindow:  -1,
		SegmentSeparator: " ",
		RecordMarkers:    []string{`\id`, `\ref`},
	}
}

// Load reads a YAML run file over the defaults. Unknown keys are
// rejected so typos fail loudly.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("opening config: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault reads DefaultName from the working directory when present.
// A missing file is not an error; the defaults apply.
func LoadDefault() (Config, error) {
	cfg, err := Load(DefaultName)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}
