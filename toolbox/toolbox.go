// Package toolbox reads SIL Toolbox files: backslash-marked field lines
// grouped into records, with column-aligned interlinear tiers.
package toolbox

import (
	"bufio"
	"io"
	"regexp"
	"strings"
	"unicode"
)

// Field is one marker line of a Toolbox file. Continuation lines (lines
// that do not begin a new field) are merged into the value. Internal
// padding is preserved so that tier columns stay meaningful.
type Field struct {
	Marker string // backslash-prefixed marker, e.g. `\tx`
	Value  string
}

// fieldLine matches `\marker value`. The marker is a backslash followed
// by non-whitespace, separated from the value by a single whitespace
// character; any further padding belongs to the value.
var fieldLine = regexp.MustCompile(`^(\\\S+)(?:[ \t]|$)(.*)$`)

// markerShape is the expected shape of a field marker.
var markerShape = regexp.MustCompile(`^\\[a-zA-Z0-9]+$`)

// Canonical returns the marker with its leading backslash, adding one
// when absent.
func Canonical(marker string) string {
	if strings.HasPrefix(marker, `\`) {
		return marker
	}
	return `\` + marker
}

// WellFormed reports whether a canonical marker is a backslash followed
// by ASCII letters and digits only.
func WellFormed(marker string) bool {
	return markerShape.MatchString(marker)
}

// ReadFields parses a Toolbox stream into its fields. Lines before the
// first marker are dropped; lines that do not start a field continue the
// previous field's value. Trailing whitespace of each completed value is
// stripped.
func ReadFields(r io.Reader) ([]Field, error) {
	var fields []Field
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		if m := fieldLine.FindStringSubmatch(line); m != nil {
			fields = append(fields, Field{Marker: m[1], Value: m[2]})
		} else if len(fields) > 0 {
			fields[len(fields)-1].Value += "\n" + line
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for i := range fields {
		fields[i].Value = strings.TrimRightFunc(fields[i].Value, unicode.IsSpace)
	}
	return fields, nil
}
