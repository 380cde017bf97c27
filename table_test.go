package tbfst

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestTable_RoundTrip(t *testing.T) {
	src, err := New("tx", "mb")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	src.add("nuki", "nuki", 2)
	src.add("wapika", "wapi -ka", 1)

	var buf bytes.Buffer
	if err := src.SaveTable(&buf); err != nil {
		t.Fatalf("SaveTable failed: %v", err)
	}

	dst, err := New("tx", "mb")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := dst.LoadTable(&buf); err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	if !reflect.DeepEqual(dst.Pairs(), src.Pairs()) {
		t.Errorf("Pairs() = %v, want %v", dst.Pairs(), src.Pairs())
	}
}

func TestTable_LoadMergesCounts(t *testing.T) {
	src, err := New("tx", "mb")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	src.add("nuki", "nuki", 2)

	var buf bytes.Buffer
	if err := src.SaveTable(&buf); err != nil {
		t.Fatalf("SaveTable failed: %v", err)
	}

	dst, err := New("tx", "mb")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	dst.add("nuki", "nuki", 1)
	if err := dst.LoadTable(&buf); err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	if got := dst.Count("nuki", "nuki"); got != 3 {
		t.Errorf("Count(nuki, nuki) = %d, want 3", got)
	}
}

func TestTable_MarkerMismatch(t *testing.T) {
	src, err := New("tx", "mb")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	src.add("nuki", "nuki", 1)

	var buf bytes.Buffer
	if err := src.SaveTable(&buf); err != nil {
		t.Fatalf("SaveTable failed: %v", err)
	}

	dst, err := New("tx", "ge")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	err = dst.LoadTable(&buf)
	if !errors.Is(err, ErrTableMarkers) {
		t.Errorf("expected ErrTableMarkers, got %v", err)
	}
}

func TestTable_LoadGarbage(t *testing.T) {
	gen, err := New("tx", "mb")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := gen.LoadTable(bytes.NewReader([]byte("not a table"))); err == nil {
		t.Error("expected decode error")
	}
}
