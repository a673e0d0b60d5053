package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureParentDirCreatesNestedDirectories(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a", "b", "c", "out.txt")

	if err := EnsureParentDir(target); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(filepath.Dir(target))
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %s to be a directory", filepath.Dir(target))
	}
}

func TestEnsureParentDirBareFileName(t *testing.T) {
	if err := EnsureParentDir("out.txt"); err != nil {
		t.Fatalf("expected no error for bare file name, got %v", err)
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")

	if err := WriteFile(target, []byte("a much longer first version"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(target, []byte("short"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "short" {
		t.Fatalf("content mismatch: got %q, want %q", got, "short")
	}
}

func TestWriteFileMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	err := WriteFile(filepath.Join(dir, "nope", "out.txt"), []byte("x"), 0o644)
	if err == nil {
		t.Fatal("expected error when parent directory is missing")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestWithLockRunsCallback(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")

	called := false
	err := WithLock(target, func() error {
		called = true
		if _, err := os.Stat(LockPath(target)); err != nil {
			t.Fatalf("expected lock file while held: %v", err)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Fatal("expected callback to run")
	}
}

func TestWithLockPropagatesCallbackError(t *testing.T) {
	dir := t.TempDir()
	want := errors.New("boom")
	err := WithLock(filepath.Join(dir, "out.txt"), func() error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("expected callback error, got %v", err)
	}
}
