package patch

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation is wrapped by errors for operations whose result would
// not read back unchanged, such as a set on a key the parser keeps as a raw
// line.
var ErrInvalidOperation = errors.New("invalid operation")

// IOError reports a filesystem failure while applying a batch. When it is
// returned the target file has not been replaced.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
