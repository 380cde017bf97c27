package tbfst

import (
	"encoding/gob"
	"fmt"
	"io"
)

// tableFile is the gob payload of a saved frequency table. The markers
// travel with the counts so a cache cannot silently merge into a
// generator for a different tier pair.
type tableFile struct {
	Source string
	Target string
	Counts map[string]map[string]int
}

// SaveTable writes the frequency table as a gob stream tagged with the
// generator's markers.
func (g *Generator) SaveTable(w io.Writer) error {
	tf := tableFile{Source: g.source, Target: g.target, Counts: g.counts}
	if err := gob.NewEncoder(w).Encode(tf); err != nil {
		return fmt.Errorf("encoding table: %w", err)
	}
	return nil
}

// LoadTable merges a previously saved table into the generator, summing
// counts cell by cell. The saved markers must match the generator's.
func (g *Generator) LoadTable(r io.Reader) error {
	var tf tableFile
	if err := gob.NewDecoder(r).Decode(&tf); err != nil {
		return fmt.Errorf("decoding table: %w", err)
	}
	if tf.Source != g.source || tf.Target != g.target {
		return fmt.Errorf("%w: table maps %s to %s, generator maps %s to %s",
			ErrTableMarkers, tf.Source, tf.Target, g.source, g.target)
	}
	for src, m := range tf.Counts {
		for tgt, n := range m {
			g.add(src, tgt, n)
		}
	}
	return nil
}
