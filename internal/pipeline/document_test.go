package pipeline

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestParseDocument(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single line no terminator", "hello", []string{"hello"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"mixed endings", "a\r\nb\nc", []string{"a", "b", "c"}},
		{"blank lines kept", "a\n\n\nb", []string{"a", "", "", "b"}},
		{"only newline", "\n", []string{""}},
		{"doubled carriage return", "abc\r\r\nx\ry\n", []string{"abc", "x\ry"}},
		{"bare trailing carriage return", "end\r", []string{"end"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := ParseDocument(tt.text)
			if got := doc.Lines(); !slices.Equal(got, tt.want) {
				t.Fatalf("ParseDocument(%q) = %q, want %q", tt.text, got, tt.want)
			}
			if doc.Len() != len(tt.want) {
				t.Fatalf("Len() = %d, want %d", doc.Len(), len(tt.want))
			}
		})
	}
}

func TestDocumentLinesReturnsCopy(t *testing.T) {
	doc := NewDocument([]string{"one", "two"})
	lines := doc.Lines()
	lines[0] = "mutated"
	if doc.Line(0) != "one" {
		t.Fatalf("document mutated through Lines(): %q", doc.Line(0))
	}
}

func TestNewDocumentSplitsEmbeddedBreaks(t *testing.T) {
	doc := NewDocument([]string{"", "two\nlines", "tail\r\r", "done\n"})
	want := []string{"", "two", "lines", "tail", "done"}
	if got := doc.Lines(); !slices.Equal(got, want) {
		t.Fatalf("NewDocument() lines = %q, want %q", got, want)
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, []byte("hello world\r\n\r\nHello, HELLO!\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := []string{"hello world", "", "Hello, HELLO!"}
	if got := doc.Lines(); !slices.Equal(got, want) {
		t.Fatalf("Load() lines = %q, want %q", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	doc, err := Load(path)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IOError, got %T", err)
	}
	if ioErr.Op != "load" || ioErr.Path != path {
		t.Fatalf("unexpected IOError fields: %+v", ioErr)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
	if doc.Len() != 0 {
		t.Fatalf("expected empty document on failure, got %d lines", doc.Len())
	}
}

func TestLoadDirectoryFails(t *testing.T) {
	_, err := Load(t.TempDir())
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IOError reading a directory, got %v", err)
	}
}
