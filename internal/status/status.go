// Package status writes single-line terminal progress to a stream.
package status

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Line is an overwriting status line. On terminals each Setf replaces
// the previous message with a carriage-return rewrite; on plain streams
// Setf stays silent and only Donef messages appear. A failed write
// disables the line for the rest of the run.
type Line struct {
	w       io.Writer
	tty     bool
	enabled bool
	lastLen int
}

// New creates a Line writing to w. Overwriting engages only when w is a
// terminal.
func New(w io.Writer) *Line {
	l := &Line{w: w, enabled: true}
	if f, ok := w.(*os.File); ok {
		l.tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return l
}

// Setf replaces the current status line. The rewrite pads with spaces
// when the previous message was longer, so no tail is left behind.
func (l *Line) Setf(format string, args ...any) {
	if !l.enabled || !l.tty {
		return
	}
	s := fmt.Sprintf(format, args...)
	pad := 0
	if n := runeLen(s); l.lastLen > n {
		pad = l.lastLen - n
	}
	var b strings.Builder
	b.WriteByte('\r')
	b.WriteString(s)
	if pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	if _, err := io.WriteString(l.w, b.String()); err != nil {
		l.enabled = false
		return
	}
	l.lastLen = runeLen(s)
}

// Donef clears any pending status line and prints a newline-terminated
// message, on terminals and plain streams alike.
func (l *Line) Donef(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.Clear()
	if _, err := fmt.Fprintf(l.w, format+"\n", args...); err != nil {
		l.enabled = false
	}
}

// Clear erases the current status line.
func (l *Line) Clear() {
	if !l.enabled || !l.tty || l.lastLen == 0 {
		return
	}
	if _, err := io.WriteString(l.w, "\r"+strings.Repeat(" ", l.lastLen)+"\r"); err != nil {
		l.enabled = false
		return
	}
	l.lastLen = 0
}

func runeLen(s string) int { return len([]rune(s)) }
