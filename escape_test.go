package tbfst

import "testing"

func TestEscapeSFST(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"plain", "plain"},
		{"a=b", `a\=b`},
		{"a-b", `a\-b`},
		{"a|b", `a\|b`},
		{"a b", `a\ b`},
		{"a.b,c", `a\.b\,c`},
		{"(x):[y]?", `\(x\)\:\[y\]\?`},
		{"&*!", `\&\*\!`},
		{`\`, `\\`},
		{`\=`, `\\\=`},
		{"kūra", "kūra"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := escapeSFST(tc.input); got != tc.expected {
			t.Errorf("escapeSFST(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestUnescapedBackslash(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"plain", false},
		{`a\=b`, false},
		{`\\`, false},
		{`a\b`, true},
		{`a\`, true},
		{`\\\`, true},
	}
	for _, tc := range tests {
		if got := unescapedBackslash(tc.input); got != tc.expected {
			t.Errorf("unescapedBackslash(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}
