package toolbox

import (
	"fmt"
	"sort"
	"unicode"
	"unicode/utf8"
)

// Pair is one source-tier token together with the target-tier tokens
// aligned under it. Targets may be empty when nothing aligns.
type Pair struct {
	Source  string
	Targets []string
}

// AlignError reports target-tier material that no source-tier token
// covers.
type AlignError struct {
	Source string // source tier marker
	Target string // target tier marker
	Column int    // rune column of the offending target token
}

func (e *AlignError) Error() string {
	return fmt.Sprintf("toolbox: no %s token covers %s material at column %d", e.Source, e.Target, e.Column)
}

// token is a tier token with its absolute rune column in the line,
// counted from the start of the marker.
type token struct {
	text string
	col  int
}

// tierTokens splits a tier value into whitespace-separated tokens with
// absolute columns. The marker and its single separator character shift
// every column, so tiers with markers of equal width line up.
func tierTokens(f Field) []token {
	base := utf8.RuneCountInString(f.Marker) + 1
	var toks []token
	var buf []rune
	start := -1
	col := base
	for _, r := range f.Value {
		if unicode.IsSpace(r) {
			if start >= 0 {
				toks = append(toks, token{text: string(buf), col: start})
				buf, start = nil, -1
			}
		} else {
			if start < 0 {
				start = col
			}
			buf = append(buf, r)
		}
		col++
	}
	if start >= 0 {
		toks = append(toks, token{text: string(buf), col: start})
	}
	return toks
}

// Align pairs every source-tier token of the record with the target-tier
// tokens starting within its span. A target token belongs to the last
// source token whose column does not exceed the target's column; target
// material to the left of every source token is an alignment error.
// Records wrap long lines by repeating the tier pair, so alignment runs
// group by group and concatenates.
func Align(rec Record, source, target string) ([]Pair, error) {
	var pairs []Pair
	for _, b := range bundles(rec.Fields, source, target) {
		bp, err := alignBundle(b, source, target)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, bp...)
	}
	return pairs, nil
}

// bundle is one wrapped line group: at most one source and one target
// field.
type bundle struct {
	src *Field
	tgt *Field
}

func bundles(fields []Field, source, target string) []bundle {
	var out []bundle
	var cur bundle
	flush := func() {
		if cur.src != nil || cur.tgt != nil {
			out = append(out, cur)
			cur = bundle{}
		}
	}
	for i := range fields {
		f := &fields[i]
		switch f.Marker {
		case source:
			if cur.src != nil {
				flush()
			}
			cur.src = f
		case target:
			if cur.tgt != nil {
				flush()
			}
			cur.tgt = f
		}
	}
	flush()
	return out
}

func alignBundle(b bundle, source, target string) ([]Pair, error) {
	var st, tt []token
	if b.src != nil {
		st = tierTokens(*b.src)
	}
	if b.tgt != nil {
		tt = tierTokens(*b.tgt)
	}
	if len(st) == 0 {
		if len(tt) > 0 {
			return nil, &AlignError{Source: source, Target: target, Column: tt[0].col}
		}
		return nil, nil
	}
	pairs := make([]Pair, len(st))
	for i, s := range st {
		pairs[i] = Pair{Source: s.text}
	}
	for _, t := range tt {
		i := sort.Search(len(st), func(i int) bool { return st[i].col > t.col }) - 1
		if i < 0 {
			return nil, &AlignError{Source: source, Target: target, Column: t.col}
		}
		pairs[i].Targets = append(pairs[i].Targets, t.text)
	}
	return pairs, nil
}
