package main

import (
	"empty-dirs/config"
	"empty-dirs/utils"
	"github.com/stretchr/testify/assert"
	"io"
	"os"
	"path"
	"path/filepath"
	"testing"
)

func createEmptyTempTestDataPath(t *testing.T) string {
	tempTestDataPath, err := os.MkdirTemp("", "empty-dirs-")
	assert.NoError(t, err)

	tempTestDataAbsolutePath, err := filepath.Abs(tempTestDataPath)
	assert.NoError(t, err)

	return tempTestDataAbsolutePath
}

// createTestTree creates the given directories and empty files below root.
func createTestTree(t *testing.T, root string, directories []string, files []string) {
	for _, directory := range directories {
		err := os.MkdirAll(path.Join(root, directory), 0750)
		assert.NoError(t, err)
	}

	for _, file := range files {
		err := os.MkdirAll(filepath.Dir(path.Join(root, file)), 0750)
		assert.NoError(t, err)

		err = os.WriteFile(path.Join(root, file), nil, 0600)
		assert.NoError(t, err)
	}
}

// getFolderAndFileTotalCount counts everything below root, root excluded.
func getFolderAndFileTotalCount(t *testing.T, root string) (int, int) {
	folderCount := 0
	fileCount := 0

	err := filepath.Walk(root, func(currentPath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if currentPath == root {
			return nil
		}

		if info.IsDir() {
			folderCount++
		} else {
			fileCount++
		}

		return nil
	})
	assert.NoError(t, err)

	return folderCount, fileCount
}

func newTestContext(fs FileSystem, c *config.Config) *Context {
	utils.SetConsoleOutput(io.Discard)
	_, _ = utils.SetupLogger("")

	return &Context{
		Config: c,
		FS:     fs,
	}
}
