package main

import (
	"errors"
	"fmt"
)

var (
	ErrCouldNotResolvePath = errors.New("could not resolve path")
	ErrReadOnly            = errors.New("directory is read-only")
)

// ReadOnlyError reports a removal blocked by a read-only directory, which is
// either the directory itself or, on Unix, its parent.
type ReadOnlyError struct {
	Path   string
	Locked string
	Err    error
}

func (e *ReadOnlyError) Error() string {
	if e.Locked != e.Path {
		return fmt.Sprintf("rmdir %s: parent directory \"%s\" is read-only", e.Path, e.Locked)
	}

	if e.Err != nil {
		return fmt.Sprintf("rmdir %s: %v: %v", e.Path, ErrReadOnly, e.Err)
	}

	return fmt.Sprintf("rmdir %s: %v", e.Path, ErrReadOnly)
}

func (e *ReadOnlyError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrReadOnly}
	}

	return []error{ErrReadOnly, e.Err}
}
