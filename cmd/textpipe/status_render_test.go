package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"textpipe/internal/pipeline"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Input", statusError, "/tmp/missing.txt", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Input:", "[ERROR] /tmp/missing.txt")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("Word counts", statusOK, "done", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestRenderStatusLineWithoutMessage(t *testing.T) {
	got := renderStatusLine("Config", statusWarn, "", false)
	if !strings.HasSuffix(got, "[WARN]") {
		t.Fatalf("expected bare status, got %q", got)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(&bytes.Buffer{}) {
		t.Fatal("expected buffers to never be colorized")
	}
}

func TestRenderWordTable(t *testing.T) {
	out := renderWordTable([]pipeline.WordCount{{Word: "hello", Count: 3}, {Word: "world", Count: 1}}, 4)
	for _, want := range []string{"WORD", "COUNT", "hello", "75.0%", "world", "25.0%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table:\n%s", want, out)
		}
	}
}

func TestRenderTableNoHeaders(t *testing.T) {
	if got := renderTable(nil, nil, nil); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestPlural(t *testing.T) {
	tests := map[int]string{0: "0 lines", 1: "1 line", 2: "2 lines"}
	for n, want := range tests {
		if got := plural(n, "line"); got != want {
			t.Fatalf("plural(%d) = %q, want %q", n, got, want)
		}
	}
}
