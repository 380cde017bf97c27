package tbfst

import (
	"math"
	"reflect"
	"testing"
)

func TestCorePair(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		tgt     string
		window  int
		coreSrc string
		coreTgt string
		ok      bool
	}{
		{"suffix diff, no window", "walking", "walk", 0, "", "", false},
		{"suffix diff, one context rune", "walked", "walk", 1, "ked", "k", true},
		{"identical strings vanish", "abc", "abc", 0, "", "", false},
		{"infix diff", "man", "men", 0, "a", "e", true},
		{"cores are trimmed", "a b", "a c", 1, "b", "c", true},
		{"multibyte runes", "kūra", "kūri", 0, "a", "i", true},
		{"window clamps at bounds", "ab", "cd", 5, "ab", "cd", true},
		{"huge window saturates", "walked", "walk", math.MaxInt, "walked", "walk", true},
		{"suffix never crosses prefix", "aaa", "aa", 0, "", "", false},
		{"whole-string prefix", "walk", "walked", 0, "", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cs, ct, ok := corePair(tc.src, tc.tgt, tc.window)
			if cs != tc.coreSrc || ct != tc.coreTgt || ok != tc.ok {
				t.Errorf("corePair(%q, %q, %d) = %q, %q, %v, want %q, %q, %v",
					tc.src, tc.tgt, tc.window, cs, ct, ok, tc.coreSrc, tc.coreTgt, tc.ok)
			}
		})
	}
}

func TestReducedCounts(t *testing.T) {
	counts := map[string]map[string]int{
		"man": {"men": 2},
		"can": {"cen": 1},
	}
	got := reducedCounts(counts, 0, false)
	want := map[string]map[string]int{"a": {"e": 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("reducedCounts() = %v, want %v", got, want)
	}
}

func TestReducedCounts_Fold(t *testing.T) {
	counts := map[string]map[string]int{
		"Man": {"men": 1},
		"man": {"men": 1},
	}
	got := reducedCounts(counts, 0, true)
	want := map[string]map[string]int{"a": {"e": 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("reducedCounts() = %v, want %v", got, want)
	}
}
