package tbfst

import (
	"compress/bzip2"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Input is one source of Toolbox data for Generator.Add. The concrete
// variants are FileInput, TextInput, StreamInput and MultiInput.
type Input interface {
	isInput()
}

// FileInput reads a Toolbox file from disk. Files ending in .gz or .bz2
// decompress transparently.
type FileInput string

// TextInput holds inline Toolbox text.
type TextInput string

// StreamInput reads Toolbox data from an open reader. Name labels the
// stream in diagnostics.
type StreamInput struct {
	R    io.Reader
	Name string
}

// MultiInput processes a sequence of inputs in order.
type MultiInput []Input

func (FileInput) isInput()   {}
func (TextInput) isInput()   {}
func (StreamInput) isInput() {}
func (MultiInput) isInput()  {}

// fileStream keeps the underlying file closable behind a decompressing
// reader.
type fileStream struct {
	io.Reader
	f *os.File
}

func (s fileStream) Close() error { return s.f.Close() }

// openInput resolves a non-sequence input to a reader and a name for
// diagnostics.
func openInput(in Input) (io.ReadCloser, string, error) {
	switch v := in.(type) {
	case FileInput:
		path := string(v)
		f, err := os.Open(path)
		if err != nil {
			return nil, path, fmt.Errorf("opening input: %w", err)
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".gz":
			zr, err := gzip.NewReader(f)
			if err != nil {
				_ = f.Close()
				return nil, path, fmt.Errorf("opening input %s: %w", path, err)
			}
			return fileStream{Reader: zr, f: f}, path, nil
		case ".bz2":
			return fileStream{Reader: bzip2.NewReader(f), f: f}, path, nil
		}
		return f, path, nil
	case TextInput:
		return io.NopCloser(strings.NewReader(string(v))), "inline text", nil
	case StreamInput:
		name := v.Name
		if name == "" {
			name = "stream"
		}
		return io.NopCloser(v.R), name, nil
	default:
		return nil, "", fmt.Errorf("tbfst: unknown input type %T", in)
	}
}
