//go:build ignore

// Convert a two-column CSV of word form and lemma pairs into Toolbox
// interlinear records with column-aligned \tx and \lm tiers.
// Usage: go run ./scripts/csv2toolbox.go words.csv > corpus.txt
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Pairs per \ref record. Short lines keep the tiers readable.
const perRecord = 8

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: go run ./scripts/csv2toolbox.go words.csv")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening input: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading CSV: %v\n", err)
		os.Exit(1)
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "No rows in input")
		os.Exit(1)
	}

	fmt.Println(`\_sh v3.0  400  Text`)

	for start := 0; start < len(rows); start += perRecord {
		end := start + perRecord
		if end > len(rows) {
			end = len(rows)
		}
		chunk := rows[start:end]

		fmt.Println()
		fmt.Printf("\\ref %03d\n", start/perRecord+1)
		fmt.Printf("\\tx %s\n", tier(chunk, 0))
		fmt.Printf("\\lm %s\n", tier(chunk, 1))
	}
}

// tier renders one column of the chunk, padding each token to the rune
// width of its widest counterpart so the two tiers stay aligned.
func tier(chunk [][]string, col int) string {
	var sb strings.Builder
	for i, row := range chunk {
		if i > 0 {
			sb.WriteString("  ")
		}
		token := row[col]
		sb.WriteString(token)
		width := utf8.RuneCountInString(row[0])
		if n := utf8.RuneCountInString(row[1]); n > width {
			width = n
		}
		for pad := width - utf8.RuneCountInString(token); pad > 0; pad-- {
			sb.WriteByte(' ')
		}
	}
	return strings.TrimRight(sb.String(), " ")
}
