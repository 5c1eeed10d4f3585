package main

import (
	"bytes"
	"empty-dirs/utils"
	"github.com/stretchr/testify/assert"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestConfig(t *testing.T, dir string) string {
	configFilePath := path.Join(dir, "config.yaml")
	err := os.WriteFile(configFilePath, []byte("show_progress: false\n"), 0600)
	assert.NoError(t, err)

	return configFilePath
}

func TestRootCmdRequiresADirectory(t *testing.T) {
	cmd := rootCmd()
	cmd.SetArgs([]string{"--delete"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	assert.Error(t, err)
}

func TestRootCmdDryRunThenDelete(t *testing.T) {
	configPath := createEmptyTempTestDataPath(t)
	defer os.RemoveAll(configPath)
	tempTestDataPath := createEmptyTempTestDataPath(t)
	defer os.RemoveAll(tempTestDataPath)

	createTestTree(t, tempTestDataPath, []string{"A/B"}, nil)
	configFilePath := writeTestConfig(t, configPath)

	var console bytes.Buffer
	previous := utils.SetConsoleOutput(&console)
	defer utils.SetConsoleOutput(previous)

	cmd := rootCmd()
	cmd.SetArgs([]string{"--config", configFilePath, tempTestDataPath})
	assert.NoError(t, cmd.Execute())

	output := console.String()
	assert.Contains(t, output, "Would delete empty directory \""+filepath.Join(tempTestDataPath, "A", "B")+"\"")
	assert.Contains(t, output, "Found 2 empty directories to delete")
	assert.True(t, IsDir(filepath.Join(tempTestDataPath, "A", "B")))

	console.Reset()

	cmd = rootCmd()
	cmd.SetArgs([]string{"-c", configFilePath, "-d", tempTestDataPath})
	assert.NoError(t, cmd.Execute())

	output = console.String()
	assert.Contains(t, output, "Deleting empty directory \""+filepath.Join(tempTestDataPath, "A")+"\"")
	assert.Contains(t, output, "Deleted 2 empty directories")
	assert.False(t, strings.Contains(output, "Warning"))
	assert.False(t, IsDir(filepath.Join(tempTestDataPath, "A")))
}

func TestRootCmdFailsForUnreadableConfig(t *testing.T) {
	tempTestDataPath := createEmptyTempTestDataPath(t)
	defer os.RemoveAll(tempTestDataPath)

	cmd := rootCmd()
	cmd.SetArgs([]string{"--config", path.Join(tempTestDataPath, "missing.yaml"), tempTestDataPath})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	assert.Error(t, cmd.Execute())
}
