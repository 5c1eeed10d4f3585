package main

import (
	"empty-dirs/utils"
	"errors"
	"fmt"
	"path/filepath"
	"time"
)

// Warning is a recovered failure, the directory it happened on is left alone.
type Warning struct {
	Path string
	Err  error
}

// Summary accumulates the outcome of a run over all of its roots.
type Summary struct {
	EmptyCount    int64
	WarningsCount int64

	// EmptyDirectories lists the removed (or removable) directories in the
	// order they were resolved, children always before their parent.
	EmptyDirectories []string
	Warnings         []Warning
}

// ClearEmptyFolders scans every configured root in order. Filesystem
// failures become warnings on the summary, only an invalid configuration
// is returned as an error.
func (ctx *Context) ClearEmptyFolders() (*Summary, error) {
	startedAt := time.Now()
	err := ctx.Config.Validate()

	if err != nil {
		return nil, err
	}

	rootPaths, err := resolveRootPaths(ctx.Config.Directories)

	if err != nil {
		return nil, err
	}

	if ctx.DB != nil {
		ctx.reportLastRun(rootPaths)
	}

	summary := &Summary{}

	for _, rootPath := range rootPaths {
		if !IsDir(rootPath) {
			ctx.warn(summary, rootPath, fmt.Errorf("\"%s\" is not a directory, skipping", rootPath))
			continue
		}

		utils.ConsoleAndLogPrintf("Scanning \"%s\" for empty directories...", rootPath)
		ctx.clearEmptyFolder(rootPath, summary)
	}

	ctx.Progress.Finish()

	if ctx.DB != nil {
		err = ctx.recordRun(rootPaths, summary, startedAt)

		if err != nil {
			utils.WarningPrintf("could not record the run in the journal: %v", err)
		}
	}

	return summary, nil
}

func (ctx *Context) printSummary(summary *Summary) {
	if summary.WarningsCount > 0 {
		utils.WarningPrintf("There were %s; see log for details.", utils.Pluralize("warning", summary.WarningsCount))
	}

	if ctx.Config.Delete {
		utils.ConsoleAndLogPrintf("Deleted %s", utils.Pluralize("empty directory", summary.EmptyCount))
		return
	}

	utils.ConsoleAndLogPrintf("Found %s to delete", utils.Pluralize("empty directory", summary.EmptyCount))
}

// clearEmptyFolder reports whether filePath is empty once all of its
// subdirectories have been dealt with. The directory itself is left for the
// caller to remove.
func (ctx *Context) clearEmptyFolder(filePath string, summary *Summary) bool {
	ctx.Progress.Add()

	subdirectories, err := ctx.FS.ListDirectories(filePath)

	if err != nil {
		ctx.warn(summary, filePath, fmt.Errorf("could not list directories in \"%s\": %w", filePath, err))
		return false
	}

	subdirectoriesLeft := false

	for _, subdirectory := range subdirectories {
		if utils.IsInArray(filepath.Base(subdirectory), ctx.Config.FolderNamesToIgnore) {
			subdirectoriesLeft = true
			continue
		}

		if !ctx.clearEmptyFolder(subdirectory, summary) {
			subdirectoriesLeft = true
			continue
		}

		if !ctx.removeEmptyFolder(subdirectory, summary) {
			subdirectoriesLeft = true
		}
	}

	if subdirectoriesLeft {
		return false
	}

	files, err := ctx.FS.ListFiles(filePath)

	if err != nil {
		ctx.warn(summary, filePath, fmt.Errorf("could not list files in \"%s\": %w", filePath, err))
		return false
	}

	return len(files) == 0
}

// removeEmptyFolder deletes (or, on a dry run, pretends to delete) a
// directory already known to be empty. It returns false if the directory
// is left behind.
func (ctx *Context) removeEmptyFolder(filePath string, summary *Summary) bool {
	if !ctx.Config.Delete {
		if !ctx.Config.ForceReadonly {
			blocker, err := ctx.FS.ReadOnlyBlocker(filePath)

			if err != nil {
				ctx.warn(summary, filePath, fmt.Errorf("could not read attributes of \"%s\": %w", filePath, err))
				return false
			}

			if blocker != "" {
				ctx.warn(summary, filePath, readOnlyWarning(filePath, &ReadOnlyError{Path: filePath, Locked: blocker}))
				return false
			}
		}

		utils.ConsoleAndLogPrintf("Would delete empty directory \"%s\"", filePath)
		summary.addEmptyDirectory(filePath)
		return true
	}

	err := ctx.removeDirectory(filePath)

	if err != nil {
		if errors.Is(err, ErrReadOnly) && !ctx.Config.ForceReadonly {
			ctx.warn(summary, filePath, readOnlyWarning(filePath, err))
		} else {
			ctx.warn(summary, filePath, fmt.Errorf("could not delete directory \"%s\": %w", filePath, err))
		}

		return false
	}

	utils.ConsoleAndLogPrintf("Deleting empty directory \"%s\"", filePath)
	summary.addEmptyDirectory(filePath)
	return true
}

// removeDirectory tries once, and once more after clearing the read-only
// attribute when that is what stopped it and we are allowed to.
func (ctx *Context) removeDirectory(filePath string) error {
	err := ctx.FS.RemoveDirectory(filePath)

	if err == nil || !errors.Is(err, ErrReadOnly) || !ctx.Config.ForceReadonly {
		return err
	}

	lockedPath := filePath

	var readOnlyErr *ReadOnlyError

	if errors.As(err, &readOnlyErr) {
		lockedPath = readOnlyErr.Locked
	}

	err = ctx.FS.ClearReadOnly(lockedPath)

	if err != nil {
		return fmt.Errorf("could not clear the read-only attribute: %w", err)
	}

	return ctx.FS.RemoveDirectory(filePath)
}

func readOnlyWarning(filePath string, err error) error {
	return fmt.Errorf("could not delete directory \"%s\", use -f (--force-readonly) to clear the read-only attribute: %w", filePath, err)
}

func (ctx *Context) warn(summary *Summary, filePath string, err error) {
	utils.WarningPrintf("%v", err)
	summary.WarningsCount++
	summary.Warnings = append(summary.Warnings, Warning{Path: filePath, Err: err})
}

func (summary *Summary) addEmptyDirectory(filePath string) {
	summary.EmptyCount++
	summary.EmptyDirectories = append(summary.EmptyDirectories, filePath)
}
