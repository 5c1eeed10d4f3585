package main

import (
	"context"
	_ "embed"
	"empty-dirs/config"
	"empty-dirs/utils"
	"fmt"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"os"
	"time"
)

//goland:noinspection GoUnnecessarilyExportedIdentifiers
var AppVersion = "1.0"

//go:embed config.yaml
var defaultConfigData []byte

type options struct {
	configFilePath string
	delete         bool
	forceReadonly  bool
	progress       bool
}

func main() {
	if err := fang.Execute(context.Background(), rootCmd()); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "empty-dirs [flags] DIRECTORY...",
		Short:   "Find and delete empty directories",
		Version: AppVersion,
		Long: `Recursively scans each DIRECTORY for directories that are empty, or that only
contain empty directories, and reports them bottom-up.

Nothing is deleted unless --delete is given. Read-only directories are skipped
with a warning unless --force-readonly is also given. The DIRECTORY arguments
themselves are never deleted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args, cmd.Flags().Changed("progress"))
		},
	}

	cmd.Flags().StringVarP(&opts.configFilePath, "config", "c", "", "config file (default: <user config dir>/empty-dirs/config.yaml)")
	cmd.Flags().BoolVarP(&opts.delete, "delete", "d", false, "delete empty directories instead of only listing them")
	cmd.Flags().BoolVarP(&opts.forceReadonly, "force-readonly", "f", false, "clear the read-only attribute of empty directories so they can be deleted")
	cmd.Flags().BoolVar(&opts.progress, "progress", false, "show a progress spinner on terminals (overrides show_progress from the config)")

	return cmd
}

func run(opts *options, directories []string, progressFlagSet bool) error {
	c, err := config.Load(defaultConfigData, opts.configFilePath)

	if err != nil {
		return err
	}

	c.Delete = opts.delete
	c.ForceReadonly = opts.forceReadonly
	c.Directories = directories

	if progressFlagSet {
		c.ShowProgress = opts.progress
	}

	err = c.Validate()

	if err != nil {
		return err
	}

	logFile, err := utils.SetupLogger(c.LogFilePath)

	if err != nil {
		return err
	}

	defer logFile.Close()

	ctx := &Context{
		Config:   c,
		FS:       osFileSystem{},
		Progress: utils.NewProgress(c.ShowProgress),
	}

	if c.DBPath != "" {
		ctx.DB, err = initDb(c)

		if err != nil {
			return err
		}
	}

	mode := "dry run"

	if c.Delete {
		mode = "deleting"
	}

	utils.PrintFormattedTitle(fmt.Sprintf("empty-dirs version %s (%s)", AppVersion, mode))
	startTime := time.Now()

	summary, err := ctx.ClearEmptyFolders()

	if err != nil {
		return err
	}

	ctx.printSummary(summary)
	utils.ConsoleAndLogPrintf("Finished in %s", utils.FormatDuration(time.Since(startTime)))

	return nil
}
