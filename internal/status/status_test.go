package status

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetf_OverwritesAndPads(t *testing.T) {
	var buf bytes.Buffer
	l := &Line{w: &buf, enabled: true, tty: true}

	l.Setf("process %s", "abcdef")
	l.Setf("process %s", "xy")

	want := "\rprocess abcdef\rprocess xy    "
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestDonef_ClearsPendingLine(t *testing.T) {
	var buf bytes.Buffer
	l := &Line{w: &buf, enabled: true, tty: true}

	l.Setf("process 001")
	l.Donef("processed %d records", 2)

	got := buf.String()
	if !strings.HasSuffix(got, "\rprocessed 2 records\n") {
		t.Errorf("output = %q, want clear then final line", got)
	}
	if !strings.Contains(got, "\r"+strings.Repeat(" ", len("process 001"))+"\r") {
		t.Errorf("output = %q, missing blank rewrite", got)
	}
}

func TestNonTerminal_OnlyDonefPrints(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Setf("process 001")
	l.Donef("processed 001")

	if got := buf.String(); got != "processed 001\n" {
		t.Errorf("output = %q, want %q", got, "processed 001\n")
	}
}

func TestWriteFailureDisables(t *testing.T) {
	l := &Line{w: failWriter{}, enabled: true, tty: true}
	l.Setf("process 001")
	if l.enabled {
		t.Error("line should disable after a failed write")
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, bytes.ErrTooLarge
}
