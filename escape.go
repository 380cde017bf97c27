package tbfst

import "strings"

// sfstEscapes lists the SFST metacharacters with their escaped forms in
// application order. The backslash entry must stay first: the escaper is
// not idempotent, and running the backslash pass after any other would
// double the escapes it just produced.
var sfstEscapes = []struct{ raw, escaped string }{
	{`\`, `\\`},
	{`=`, `\=`},
	{`-`, `\-`},
	{`|`, `\|`},
	{`,`, `\,`},
	{`.`, `\.`},
	{`(`, `\(`},
	{`)`, `\)`},
	{`:`, `\:`},
	{`?`, `\?`},
	{`&`, `\&`},
	{` `, `\ `},
	{`*`, `\*`},
	{`[`, `\[`},
	{`]`, `\]`},
	{`!`, `\!`},
}

// escapable is the set of characters a backslash may legally escape.
const escapable = `\=-|,.():?& *[]!`

// escapeSFST escapes SFST metacharacters in s, applying the replacement
// list in order.
func escapeSFST(s string) string {
	for _, e := range sfstEscapes {
		s = strings.ReplaceAll(s, e.raw, e.escaped)
	}
	return s
}

// unescapedBackslash reports whether s contains a backslash that does
// not escape a known metacharacter. Such a rule would shift the meaning
// of everything after it in the grammar.
func unescapedBackslash(s string) bool {
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		if rs[i] != '\\' {
			continue
		}
		if i+1 >= len(rs) || !strings.ContainsRune(escapable, rs[i+1]) {
			return true
		}
		i++
	}
	return false
}
