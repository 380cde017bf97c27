package tbfst

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrIdenticalMarkers indicates the source and target markers are the same.
	ErrIdenticalMarkers = errors.New("tbfst: identical source and target markers")

	// ErrEmptyGrammar indicates no replacement rule survived filtering.
	ErrEmptyGrammar = errors.New("tbfst: empty grammar")

	// ErrTableMarkers indicates a saved table's markers disagree with the
	// generator's.
	ErrTableMarkers = errors.New("tbfst: table markers mismatch")
)
