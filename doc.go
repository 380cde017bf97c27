// Package tbfst builds SFST replacement grammars from token-aligned SIL
// Toolbox corpora.
//
// # Quick Start
//
//	gen, err := tbfst.New(`\tx`, `\mb`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := gen.Add(tbfst.FileInput("corpus.txt")); err != nil {
//	    log.Fatal(err)
//	}
//	grammar, err := gen.SFST(tbfst.DefaultSFSTOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(grammar)
//
// # Pipeline
//
// Aggregation walks Toolbox records, aligns the target tier under the
// source tier column by column, and counts how often each source token
// maps to each target segment. Compilation turns the table into grammar
// text: one frequency-annotated replacement rule per surviving pair,
// framed by alphabet declarations derived from the rules themselves.
// The text compiles with the SFST toolchain (fst-compiler-utf8).
//
// # Concurrency
//
// Generator is not safe for concurrent use. Aggregate and compile from a
// single goroutine.
package tbfst
