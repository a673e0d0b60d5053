package pipeline

import "fmt"

// IOError reports a filesystem failure in Load or Save.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func ioError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}
