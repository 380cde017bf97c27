package tbfst

import "log/slog"

// ProgressFunc receives aggregation progress: once per processed record
// with that record's metadata, and once with done=true after an input's
// record loop finishes.
type ProgressFunc func(meta string, done bool)

// Option configures a Generator.
type Option func(*config)

type config struct {
	recordMarkers []string
	separator     string
	logger        *slog.Logger
	progress      ProgressFunc
}

func defaultConfig() config {
	return config{
		recordMarkers: []string{`\id`, `\ref`},
		separator:     " ",
		logger:        slog.Default(),
	}
}

// WithRecordMarkers sets the record-boundary markers (default: \id, \ref).
func WithRecordMarkers(markers ...string) Option {
	return func(c *config) {
		if len(markers) > 0 {
			c.recordMarkers = markers
		}
	}
}

// WithSegmentSeparator sets the joiner for multi-token target segments
// (default: single space).
func WithSegmentSeparator(sep string) Option {
	return func(c *config) {
		c.separator = sep
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithProgress sets the progress callback (default: none).
func WithProgress(f ProgressFunc) Option {
	return func(c *config) {
		c.progress = f
	}
}
