package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// CheckInputReadable verifies that path is a regular file the process can read.
func CheckInputReadable(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not readable: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (readable)", path)}
}

// CheckOutputWritable verifies that path can be created or overwritten.
func CheckOutputWritable(name, path string, createDirs bool) Result {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", path)}
	}

	dir := filepath.Dir(path)
	existing, missing, err := nearestExistingDir(dir)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	if missing && !createDirs {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: directory %s does not exist and create_dirs is off)", path, dir)}
	}
	if err := unix.Access(existing, unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %s not writable: %v)", path, existing, err)}
	}
	if missing {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (directory will be created)", path)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (writable)", path)}
}

// nearestExistingDir walks up from dir until it finds an existing directory.
// missing reports whether dir itself had to be skipped.
func nearestExistingDir(dir string) (string, bool, error) {
	current := dir
	missing := false
	for {
		info, err := os.Stat(current)
		if err == nil {
			if !info.IsDir() {
				return "", false, fmt.Errorf("%s is not a directory", current)
			}
			return current, missing, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", false, fmt.Errorf("stat %s: %w", current, err)
		}
		missing = true
		parent := filepath.Dir(current)
		if parent == current {
			return "", false, fmt.Errorf("no existing ancestor for %s", dir)
		}
		current = parent
	}
}
