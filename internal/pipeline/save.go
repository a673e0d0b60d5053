package pipeline

import (
	"strings"

	"textpipe/internal/fileutil"
)

type saveOptions struct {
	skipDirs bool
	lock     bool
}

// SaveOption adjusts how Save writes its destination.
type SaveOption func(*saveOptions)

// WithoutParentDirs makes Save fail instead of creating a missing parent directory.
func WithoutParentDirs() SaveOption {
	return func(o *saveOptions) { o.skipDirs = true }
}

// WithLock serializes concurrent writers of the same destination through a
// sidecar lock file.
func WithLock() SaveOption {
	return func(o *saveOptions) { o.lock = true }
}

// Serialize joins lines into file content, terminating each line with "\n".
func Serialize(lines []string) []byte {
	if len(lines) == 0 {
		return nil
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// Save overwrites path with lines, creating its parent directory first.
func Save(path string, lines []string, opts ...SaveOption) error {
	var o saveOptions
	for _, opt := range opts {
		opt(&o)
	}

	if !o.skipDirs {
		if err := fileutil.EnsureParentDir(path); err != nil {
			return ioError("mkdir", path, err)
		}
	}

	data := Serialize(lines)
	write := func() error {
		if err := fileutil.WriteFile(path, data, 0o644); err != nil {
			return ioError("save", path, err)
		}
		return nil
	}
	if !o.lock {
		return write()
	}

	var writeErr error
	if err := fileutil.WithLock(path, func() error {
		writeErr = write()
		return nil
	}); err != nil {
		return ioError("lock", path, err)
	}
	return writeErr
}
