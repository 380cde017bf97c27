package toolbox

import (
	"maps"
	"sort"
	"strings"
)

// Meta holds the record-boundary marker values in effect for a record,
// for example {`\id`: "Text A", `\ref`: "003"}.
type Meta map[string]string

// String renders the metadata as sorted "marker value" pairs joined by
// single spaces, e.g. `\id Text A \ref 003`.
func (m Meta) String() string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+m[k])
	}
	return strings.Join(parts, " ")
}

// Record is one Toolbox record: the fields between two record-boundary
// markers, under the metadata in effect at that point.
type Record struct {
	Meta   Meta
	Fields []Field
}

// Has reports whether the record carries at least one field with the
// given marker.
func (r Record) Has(marker string) bool {
	for _, f := range r.Fields {
		if f.Marker == marker {
			return true
		}
	}
	return false
}

// Records groups fields into records at each occurrence of a key marker.
// Key values persist across record boundaries, so an outer key such as
// `\id` stays in effect while an inner key such as `\ref` advances.
func Records(fields []Field, keys []string) []Record {
	isKey := make(map[string]bool, len(keys))
	for _, k := range keys {
		isKey[k] = true
	}

	meta := Meta{}
	var recs []Record
	var cur []Field
	flush := func() {
		if len(cur) == 0 {
			return
		}
		recs = append(recs, Record{Meta: maps.Clone(meta), Fields: cur})
		cur = nil
	}
	for _, f := range fields {
		if isKey[f.Marker] {
			flush()
			meta[f.Marker] = strings.TrimSpace(f.Value)
			continue
		}
		cur = append(cur, f)
	}
	flush()
	return recs
}
