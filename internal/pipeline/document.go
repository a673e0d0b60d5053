package pipeline

import (
	"os"
	"strings"
)

// Document is an ordered, immutable sequence of lines. No line contains "\n"
// or ends in "\r", so every Document survives Save followed by Load unchanged.
type Document struct {
	lines []string
}

// ParseDocument splits text into lines on "\n", stripping trailing "\r" runes
// from each line. A final line terminator does not yield an extra empty line.
func ParseDocument(text string) Document {
	if text == "" {
		return Document{}
	}
	return Document{lines: splitLines(text)}
}

// NewDocument builds a Document from lines that are already split. Elements
// holding embedded line breaks are split with the same rules as ParseDocument.
func NewDocument(lines []string) Document {
	if len(lines) == 0 {
		return Document{}
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, splitLines(line)...)
	}
	return Document{lines: out}
}

func splitLines(text string) []string {
	parts := strings.Split(text, "\n")
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i, line := range parts {
		parts[i] = strings.TrimRight(line, "\r")
	}
	return parts
}

// Load reads the file at path into memory and splits it into lines.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, ioError("load", path, err)
	}
	return ParseDocument(string(data)), nil
}

// Len returns the number of lines.
func (d Document) Len() int {
	return len(d.lines)
}

// Line returns the line at index i.
func (d Document) Line(i int) string {
	return d.lines[i]
}

// Lines returns a copy of the document's lines.
func (d Document) Lines() []string {
	if len(d.lines) == 0 {
		return nil
	}
	cp := make([]string, len(d.lines))
	copy(cp, d.lines)
	return cp
}
