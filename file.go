package main

import (
	"fmt"
	"os"
	"path/filepath"
)

func IsDir(path string) bool {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return true
	}

	return false
}

// resolveRootPaths makes every root absolute, keeping the given order.
func resolveRootPaths(rootPaths []string) ([]string, error) {
	var resolvedPaths []string

	for _, rootPath := range rootPaths {
		absoluteRootPath, err := filepath.Abs(rootPath)

		if err != nil {
			return nil, fmt.Errorf("%w \"%s\": %v", ErrCouldNotResolvePath, rootPath, err)
		}

		resolvedPaths = append(resolvedPaths, absoluteRootPath)
	}

	return resolvedPaths, nil
}
