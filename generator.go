package tbfst

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/glottolab/tbfst/toolbox"
)

// Generator accumulates token alignments from Toolbox records into a
// frequency table and compiles the table into an SFST grammar. It is not
// safe for concurrent use.
type Generator struct {
	source string
	target string
	cfg    config
	counts map[string]map[string]int
}

// New creates a Generator mapping the source tier to the target tier.
// Markers are canonicalized to their backslash-prefixed form; identical
// markers are a configuration error.
func New(source, target string, opts ...Option) (*Generator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	source = toolbox.Canonical(source)
	target = toolbox.Canonical(target)
	for _, m := range []string{source, target} {
		if !toolbox.WellFormed(m) {
			cfg.logger.Warn("marker has unusual shape", "marker", m)
		}
	}
	if source == target {
		return nil, fmt.Errorf("%w: %s", ErrIdenticalMarkers, source)
	}

	keys := make([]string, len(cfg.recordMarkers))
	for i, m := range cfg.recordMarkers {
		keys[i] = toolbox.Canonical(m)
	}
	cfg.recordMarkers = keys

	return &Generator{
		source: source,
		target: target,
		cfg:    cfg,
		counts: make(map[string]map[string]int),
	}, nil
}

// Source returns the canonical source-tier marker.
func (g *Generator) Source() string { return g.source }

// Target returns the canonical target-tier marker.
func (g *Generator) Target() string { return g.target }

// Add aggregates one input's records into the frequency table. Records
// missing either tier are skipped silently; records whose tiers do not
// align are skipped with a warning. Each splitter symbol further splits
// the joined target segment, and every surviving fragment counts as one
// observation.
//
// A MultiInput keeps going past failing elements and returns the joined
// errors at the end.
func (g *Generator) Add(in Input, splitters ...string) error {
	if seq, ok := in.(MultiInput); ok {
		var errs []error
		for _, el := range seq {
			if err := g.Add(el, splitters...); err != nil {
				g.cfg.logger.Error("input failed", "error", err)
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}

	r, name, err := openInput(in)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	fields, err := toolbox.ReadFields(r)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	var lastMeta string
	seen := false
	for _, rec := range toolbox.Records(fields, g.cfg.recordMarkers) {
		lastMeta = rec.Meta.String()
		seen = true
		if !rec.Has(g.source) || !rec.Has(g.target) {
			continue
		}
		pairs, err := toolbox.Align(rec, g.source, g.target)
		if err != nil {
			g.cfg.logger.Warn("skipping record", "record", lastMeta, "error", err)
			continue
		}
		if g.cfg.progress != nil {
			g.cfg.progress(lastMeta, false)
		}
		for _, p := range pairs {
			joined := strings.Join(p.Targets, g.cfg.separator)
			for _, tgt := range fragments(joined, splitters) {
				g.add(p.Source, tgt, 1)
			}
		}
	}
	if seen && g.cfg.progress != nil {
		g.cfg.progress(lastMeta, true)
	}
	return nil
}

// fragments applies each splitter symbol in turn to all fragments, then
// trims and drops empties. Without splitters the joined segment passes
// through untouched.
func fragments(s string, splitters []string) []string {
	if len(splitters) == 0 {
		return []string{s}
	}
	frags := []string{s}
	for _, sym := range splitters {
		var next []string
		for _, f := range frags {
			next = append(next, strings.Split(f, sym)...)
		}
		frags = next
	}
	out := frags[:0]
	for _, f := range frags {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func (g *Generator) add(src, tgt string, n int) {
	m := g.counts[src]
	if m == nil {
		m = make(map[string]int)
		g.counts[src] = m
	}
	m[tgt] += n
}

// PairCount is one frequency-table cell.
type PairCount struct {
	Source string
	Target string
	Count  int
}

// Count returns the observation count for one source/target cell.
func (g *Generator) Count(source, target string) int {
	return g.counts[source][target]
}

// Pairs returns the table as a slice sorted by source, then target.
func (g *Generator) Pairs() []PairCount {
	out := make([]PairCount, 0, len(g.counts))
	for src, m := range g.counts {
		for tgt, n := range m {
			out = append(out, PairCount{Source: src, Target: tgt, Count: n})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Target < out[j].Target
	})
	return out
}
