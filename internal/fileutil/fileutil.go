package fileutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// EnsureParentDir creates the directory containing path, including any
// missing ancestors. Paths in the working directory need no creation.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// WriteFile truncates path and writes data with the given mode. The write is
// not atomic: a failure part-way through may leave a truncated file.
func WriteFile(path string, data []byte, mode os.FileMode) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	return out.Close()
}

// LockPath returns the sidecar lock file used to serialize writers of path.
func LockPath(path string) string {
	return path + ".lock"
}

// WithLock runs fn while holding an exclusive advisory lock on the sidecar
// lock file for path. The caller must have created the parent directory.
func WithLock(path string, fn func() error) error {
	lock := flock.New(LockPath(path))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()
	return fn()
}
