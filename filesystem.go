package main

import (
	"os"
	"path/filepath"
)

// FileSystem is everything the scanner needs from the disk. Every method
// reports failures as errors so the walk can recover from them.
type FileSystem interface {
	ListDirectories(path string) ([]string, error)
	ListFiles(path string) ([]string, error)
	RemoveDirectory(path string) error
	IsReadOnly(path string) (bool, error)
	ClearReadOnly(path string) error

	// ReadOnlyBlocker returns the read-only directory that would stop path
	// from being removed, or "" if there is none.
	ReadOnlyBlocker(path string) (string, error)
}

type osFileSystem struct{}

func (osFileSystem) ListDirectories(path string) ([]string, error) {
	return listEntries(path, true)
}

// ListFiles returns every entry that is not a directory. Symbolic links are
// included here, so they are never followed.
func (osFileSystem) ListFiles(path string) ([]string, error) {
	return listEntries(path, false)
}

func listEntries(path string, directories bool) ([]string, error) {
	entries, err := os.ReadDir(path)

	if err != nil {
		return nil, err
	}

	var paths []string

	for _, entry := range entries {
		if entry.IsDir() == directories {
			paths = append(paths, filepath.Join(path, entry.Name()))
		}
	}

	return paths, nil
}
