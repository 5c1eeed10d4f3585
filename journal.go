package main

import (
	"empty-dirs/crypto"
	"empty-dirs/models"
	"empty-dirs/utils"
	"errors"
	"github.com/dustin/go-humanize"
	"gorm.io/gorm"
	"strings"
	"time"
)

func (ctx *Context) lastRun(rootPaths []string) (*models.Run, error) {
	var run models.Run
	result := ctx.DB.Where("fingerprint = ?", crypto.Fingerprint(rootPaths)).Order("finished_at DESC").First(&run)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return &run, nil
}

func (ctx *Context) reportLastRun(rootPaths []string) {
	run, err := ctx.lastRun(rootPaths)

	if err != nil {
		utils.WarningPrintf("could not read the run journal: %v", err)
		return
	}

	if run == nil {
		return
	}

	action := "found"

	if run.Delete {
		action = "deleted"
	}

	utils.ConsoleAndLogPrintf("Last run on these directories %s %s", humanize.Time(run.FinishedAt), action+" "+utils.Pluralize("empty directory", run.EmptyCount))
}

func (ctx *Context) recordRun(rootPaths []string, summary *Summary, startedAt time.Time) error {
	run := models.Run{
		Fingerprint:   crypto.Fingerprint(rootPaths),
		Roots:         strings.Join(rootPaths, "\n"),
		Delete:        ctx.Config.Delete,
		ForceReadonly: ctx.Config.ForceReadonly,
		EmptyCount:    summary.EmptyCount,
		WarningsCount: summary.WarningsCount,
		StartedAt:     startedAt,
		FinishedAt:    time.Now(),
	}

	for _, emptyDirectory := range summary.EmptyDirectories {
		run.EmptyDirectories = append(run.EmptyDirectories, models.EmptyDirectory{
			Path:    emptyDirectory,
			Deleted: ctx.Config.Delete,
		})
	}

	for _, warning := range summary.Warnings {
		run.Warnings = append(run.Warnings, models.Warning{
			Path:    warning.Path,
			Message: warning.Err.Error(),
		})
	}

	return ctx.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&run).Error
	})
}
