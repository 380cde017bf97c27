package main

import (
	"strings"
	"testing"

	"github.com/glottolab/tbfst"
)

func TestPrintPairs(t *testing.T) {
	pairs := []tbfst.PairCount{
		{Source: "inu", Target: "inu", Count: 2},
		{Source: "inu-ga", Target: "inu -ga", Count: 5},
		{Source: "neko", Target: "neko", Count: 2},
		{Source: "wan", Target: "wan.ONOM", Count: 1},
	}

	var sb strings.Builder
	if err := printPairs(&sb, pairs, 0); err != nil {
		t.Fatalf("printPairs: %v", err)
	}

	want := "inu-ga\tinu -ga\t5\n" +
		"inu\tinu\t2\n" +
		"neko\tneko\t2\n" +
		"wan\twan.ONOM\t1\n"
	if sb.String() != want {
		t.Errorf("printPairs output = %q, want %q", sb.String(), want)
	}
}

func TestPrintPairs_Cutoff(t *testing.T) {
	pairs := []tbfst.PairCount{
		{Source: "inu", Target: "inu", Count: 2},
		{Source: "wan", Target: "wan.ONOM", Count: 1},
	}

	var sb strings.Builder
	if err := printPairs(&sb, pairs, 1); err != nil {
		t.Fatalf("printPairs: %v", err)
	}
	if want := "inu\tinu\t2\n"; sb.String() != want {
		t.Errorf("printPairs output = %q, want %q", sb.String(), want)
	}
}
