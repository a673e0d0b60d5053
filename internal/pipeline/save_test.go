package pipeline

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outputs", "nested", "word_counts.txt")

	if err := Save(path, []string{"hello: 3", "world: 1"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello: 3\nworld: 1\n" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := Save(path, []string{"one", "two", "three"}); err != nil {
		t.Fatal(err)
	}
	if err := Save(path, []string{"only"}); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "only\n" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestSaveWithoutParentDirsFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "out.txt")

	err := Save(path, []string{"x"}, WithoutParentDirs())
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IOError, got %v", err)
	}
	if ioErr.Op != "save" {
		t.Fatalf("expected save op, got %q", ioErr.Op)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist cause, got %v", err)
	}
}

func TestSaveParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := Save(filepath.Join(blocker, "out.txt"), []string{"x"})
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IOError, got %v", err)
	}
	if ioErr.Op != "mkdir" {
		t.Fatalf("expected mkdir op, got %q", ioErr.Op)
	}
}

func TestSaveWithLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "locked.txt")
	if err := Save(path, []string{"A"}, WithLock()); err != nil {
		t.Fatalf("Save with lock: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "A\n" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestSaveEmptyContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := Save(path, nil); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Fatalf("expected empty file, got %d bytes", info.Size())
	}
}

func TestTransformRoundTripAfterLoad(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(input, []byte("abc\r\r\nx\ry\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := Load(input)
	if err != nil {
		t.Fatal(err)
	}
	transformed := FilterAndUppercase(doc)
	if want := []string{"ABC", "X\rY"}; !slices.Equal(transformed.Lines(), want) {
		t.Fatalf("FilterAndUppercase() = %q, want %q", transformed, want)
	}

	output := filepath.Join(dir, "out.txt")
	if err := Save(output, transformed.Lines()); err != nil {
		t.Fatal(err)
	}
	reloaded, err := Load(output)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(reloaded.Lines(), transformed.Lines()) {
		t.Fatalf("round trip mismatch: got %q want %q", reloaded.Lines(), transformed.Lines())
	}
}

func TestTransformRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for i, lines := range propertyCorpus {
		transformed := FilterAndUppercase(NewDocument(lines))
		path := filepath.Join(dir, "round", "trip", "out.txt")
		if err := Save(path, transformed.Lines()); err != nil {
			t.Fatalf("case %d: Save: %v", i, err)
		}
		doc, err := Load(path)
		if err != nil {
			t.Fatalf("case %d: Load: %v", i, err)
		}
		if !slices.Equal(doc.Lines(), transformed.Lines()) {
			t.Fatalf("case %d: round trip mismatch: got %q want %q", i, doc.Lines(), transformed.Lines())
		}
	}
}
