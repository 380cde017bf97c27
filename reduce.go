package tbfst

import "strings"

// corePair cuts an aligned pair down to its differing cores. The longest
// common prefix and the longest common suffix are stripped, keeping
// window runes of shared context on each side; the suffix never extends
// into the prefix, and windows wider than a token saturate to the whole
// token. Cores are whitespace-trimmed, and ok is false when either core
// vanishes.
func corePair(src, tgt string, window int) (coreSrc, coreTgt string, ok bool) {
	sr, tr := []rune(src), []rune(tgt)

	p := 0
	for p < len(sr) && p < len(tr) && sr[p] == tr[p] {
		p++
	}
	min := len(sr)
	if len(tr) < min {
		min = len(tr)
	}
	s := 0
	for s < min-p && sr[len(sr)-1-s] == tr[len(tr)-1-s] {
		s++
	}

	cut := func(rs []rune) string {
		w := window
		if w > len(rs) {
			w = len(rs)
		}
		lo := p - w
		if lo < 0 {
			lo = 0
		}
		hi := len(rs) - s + w
		if hi > len(rs) {
			hi = len(rs)
		}
		return strings.TrimSpace(string(rs[lo:hi]))
	}
	coreSrc, coreTgt = cut(sr), cut(tr)
	if coreSrc == "" || coreTgt == "" {
		return "", "", false
	}
	return coreSrc, coreTgt, true
}

// reducedCounts folds a frequency table through corePair, summing the
// counts of pairs that land on the same cores.
func reducedCounts(counts map[string]map[string]int, window int, fold bool) map[string]map[string]int {
	out := make(map[string]map[string]int)
	for src, m := range counts {
		for tgt, n := range m {
			s, t := src, tgt
			if fold {
				s, t = strings.ToLower(s), strings.ToLower(t)
			}
			cs, ct, ok := corePair(s, t, window)
			if !ok {
				continue
			}
			byTgt := out[cs]
			if byTgt == nil {
				byTgt = make(map[string]int)
				out[cs] = byTgt
			}
			byTgt[ct] += n
		}
	}
	return out
}
