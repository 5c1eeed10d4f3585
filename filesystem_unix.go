//go:build !windows

package main

import (
	"golang.org/x/sys/unix"
	"io/fs"
	"os"
	"path/filepath"
)

const ownerWrite = 0200

// RemoveDirectory refuses directories without the owner write bit, the same
// way Windows refuses to remove a directory flagged read-only. Unix also
// needs write access to the parent, so a read-only parent blocks it too.
func (f osFileSystem) RemoveDirectory(path string) error {
	blocker, err := f.ReadOnlyBlocker(path)

	if err != nil {
		return err
	}

	if blocker != "" {
		return &ReadOnlyError{Path: path, Locked: blocker}
	}

	err = unix.Rmdir(path)

	if err != nil {
		return &fs.PathError{Op: "rmdir", Path: path, Err: err}
	}

	return nil
}

func (f osFileSystem) ReadOnlyBlocker(path string) (string, error) {
	readOnly, err := f.IsReadOnly(path)

	if err != nil {
		return "", err
	}

	if readOnly {
		return path, nil
	}

	parent := filepath.Dir(path)

	// Only a parent we cannot write to and that lacks the owner write bit
	// counts, anything else is a permission problem -f cannot fix.
	if unix.Access(parent, unix.W_OK) == nil {
		return "", nil
	}

	parentReadOnly, err := f.IsReadOnly(parent)

	if err != nil {
		return "", err
	}

	if parentReadOnly {
		return parent, nil
	}

	return "", nil
}

func (osFileSystem) IsReadOnly(path string) (bool, error) {
	info, err := os.Lstat(path)

	if err != nil {
		return false, err
	}

	return info.Mode().Perm()&ownerWrite == 0, nil
}

func (osFileSystem) ClearReadOnly(path string) error {
	info, err := os.Lstat(path)

	if err != nil {
		return err
	}

	return os.Chmod(path, info.Mode().Perm()|ownerWrite)
}
