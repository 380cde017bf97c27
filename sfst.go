package tbfst

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"unicode"
)

// SFSTOptions controls grammar compilation.
type SFSTOptions struct {
	// FreqCutoff keeps only pairs observed strictly more often.
	FreqCutoff int

	// IgnoreCase case-folds pairs before reduction and appends a
	// case-folding rule to the alphabet line.
	IgnoreCase bool

	// SkipIdenticals omits rules whose source and target are equal and
	// appends a copy-through branch for unmatched tokens.
	SkipIdenticals bool

	// ReductionWindow is the shared-context width kept around the
	// differing cores of each pair. Negative emits whole-token rules.
	ReductionWindow int
}

// DefaultSFSTOptions returns the compilation defaults: no cutoff, no
// folding, whole-token rules.
func DefaultSFSTOptions() SFSTOptions {
	return SFSTOptions{ReductionWindow: -1}
}

// SFST compiles the frequency table into an SFST replacement grammar.
// The output is deterministic for a given table and options.
func (g *Generator) SFST(o SFSTOptions) (string, error) {
	counts := g.counts
	if o.ReductionWindow >= 0 {
		counts = reducedCounts(counts, o.ReductionWindow, o.IgnoreCase)
	}

	salph := make(map[rune]struct{})
	talph := make(map[rune]struct{})
	var rules []string

	for _, src := range slices.Sorted(maps.Keys(counts)) {
		byTgt := counts[src]
		for _, tgt := range slices.Sorted(maps.Keys(byTgt)) {
			n := byTgt[tgt]
			if n <= o.FreqCutoff {
				continue
			}
			// Alphabets reflect every pair past the cutoff, even when a
			// later check drops its rule.
			addRunes(salph, src)
			addRunes(talph, tgt)

			esrc := escapeSFST(src)
			if unescapedBackslash(esrc) {
				g.cfg.logger.Warn("skipping rule with unescaped backslash",
					"source", src, "target", tgt)
				continue
			}
			if o.SkipIdenticals && identical(src, tgt, o.IgnoreCase) {
				continue
			}
			rules = append(rules, fmt.Sprintf("{%s}:{%s} %% freq %d", esrc, escapeSFST(tgt), n))
		}
	}

	if len(rules) == 0 {
		return "", fmt.Errorf("%w with frequency cutoff %d", ErrEmptyGrammar, o.FreqCutoff)
	}
	g.cfg.logger.Info("compiled grammar", "rules", len(rules))

	if o.SkipIdenticals {
		rules = append(rules, ".+")
	}
	caseRule := ""
	if o.IgnoreCase {
		caseRule = " " + caseFoldRule(salph, talph)
	}
	name := ruleName(g.source, g.target)

	var b strings.Builder
	fmt.Fprintf(&b, "\n#SALPH#=%s\n#TALPH#=%s\nALPHABET=[#SALPH#] [#TALPH#]%s\n\n",
		alphabetString(salph), alphabetString(talph), caseRule)
	fmt.Fprintf(&b, "%s=%s\n\n", name, strings.Join(rules, " \\\n\t| "))
	fmt.Fprintf(&b, ".+ || [#SALPH#]+ || %s || [#TALPH#]+\n", name)
	return b.String(), nil
}

// WriteSFST compiles the grammar and writes it to w.
func (g *Generator) WriteSFST(w io.Writer, o SFSTOptions) error {
	s, err := g.SFST(o)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("writing grammar: %w", err)
	}
	return nil
}

// ruleName derives the disjunction name from the markers: upper-cased,
// joined with _to_, everything outside [A-Z0-9_] stripped, then framed
// in dollar signs.
func ruleName(source, target string) string {
	raw := strings.ToUpper(source + "_to_" + target)
	var b strings.Builder
	for _, r := range raw {
		if r == '_' || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return "$" + b.String() + "$"
}

func addRunes(set map[rune]struct{}, s string) {
	for _, r := range s {
		set[r] = struct{}{}
	}
}

func identical(src, tgt string, fold bool) bool {
	if fold {
		return strings.EqualFold(src, tgt)
	}
	return src == tgt
}

// alphabetString renders an alphabet sorted by code point, a literal
// hyphen moved to the end so it cannot read as a character range, then
// escaped.
func alphabetString(set map[rune]struct{}) string {
	rs := make([]rune, 0, len(set))
	hyphen := false
	for r := range set {
		if r == '-' {
			hyphen = true
			continue
		}
		rs = append(rs, r)
	}
	slices.Sort(rs)
	if hyphen {
		rs = append(rs, '-')
	}
	return escapeSFST(string(rs))
}

// caseFoldRule builds the folding term over the cased letters of both
// alphabets: [UPPERS]:[lowers] [lowers]:[UPPERS]. Class members stay
// unescaped.
func caseFoldRule(salph, talph map[rune]struct{}) string {
	upper := make(map[rune]struct{})
	lower := make(map[rune]struct{})
	for _, set := range []map[rune]struct{}{salph, talph} {
		for r := range set {
			if unicode.ToLower(r) == unicode.ToUpper(r) {
				continue // uncased
			}
			upper[unicode.ToUpper(r)] = struct{}{}
			lower[unicode.ToLower(r)] = struct{}{}
		}
	}
	us := slices.Sorted(maps.Keys(upper))
	ls := slices.Sorted(maps.Keys(lower))
	u, l := string(us), string(ls)
	return fmt.Sprintf("[%s]:[%s] [%s]:[%s]", u, l, l, u)
}
