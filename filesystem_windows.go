//go:build windows

package main

import (
	"golang.org/x/sys/windows"
	"io/fs"
)

func (f osFileSystem) RemoveDirectory(path string) error {
	name, err := windows.UTF16PtrFromString(path)

	if err != nil {
		return err
	}

	err = windows.RemoveDirectory(name)

	if err == nil {
		return nil
	}

	// The removal failed, find out if the read-only attribute is the reason
	readOnly, attributeErr := f.IsReadOnly(path)

	if attributeErr == nil && readOnly {
		return &ReadOnlyError{Path: path, Locked: path, Err: err}
	}

	return &fs.PathError{Op: "rmdir", Path: path, Err: err}
}

// ReadOnlyBlocker only looks at path itself, a read-only parent does not
// stop a removal on Windows.
func (f osFileSystem) ReadOnlyBlocker(path string) (string, error) {
	readOnly, err := f.IsReadOnly(path)

	if err != nil || !readOnly {
		return "", err
	}

	return path, nil
}

func (osFileSystem) IsReadOnly(path string) (bool, error) {
	attributes, err := getFileAttributes(path)

	if err != nil {
		return false, err
	}

	return attributes&windows.FILE_ATTRIBUTE_READONLY != 0, nil
}

func (osFileSystem) ClearReadOnly(path string) error {
	attributes, err := getFileAttributes(path)

	if err != nil {
		return err
	}

	name, err := windows.UTF16PtrFromString(path)

	if err != nil {
		return err
	}

	return windows.SetFileAttributes(name, attributes&^windows.FILE_ATTRIBUTE_READONLY)
}

func getFileAttributes(path string) (uint32, error) {
	name, err := windows.UTF16PtrFromString(path)

	if err != nil {
		return 0, err
	}

	attributes, err := windows.GetFileAttributes(name)

	if err != nil {
		return 0, &fs.PathError{Op: "getfileattributes", Path: path, Err: err}
	}

	return attributes, nil
}
