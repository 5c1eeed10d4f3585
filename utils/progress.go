package utils

import (
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"io"
	"log"
	"os"
)

// Progress counts scanned directories on a spinner. A nil *Progress is
// valid and does nothing.
type Progress struct {
	bar *progressbar.ProgressBar
}

// NewProgress returns nil unless enabled and stderr is a terminal.
func NewProgress(enabled bool) *Progress {
	if !enabled || !isatty.IsTerminal(os.Stderr.Fd()) {
		return nil
	}

	return NewProgressWithWriter(os.Stderr)
}

func NewProgressWithWriter(w io.Writer) *Progress {
	return &Progress{
		bar: progressbar.NewOptions64(-1,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("Scanning"),
			progressbar.OptionShowCount(),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionClearOnFinish(),
		),
	}
}

func (p *Progress) Add() {
	if p == nil {
		return
	}

	err := p.bar.Add(1)

	if err != nil {
		log.Printf("failed to update progress bar: %v", err)
	}
}

func (p *Progress) Finish() {
	if p == nil {
		return
	}

	err := p.bar.Finish()

	if err != nil {
		log.Printf("failed to finish progress bar: %v", err)
	}
}

func (p *Progress) Count() int64 {
	if p == nil {
		return 0
	}

	return int64(p.bar.State().CurrentNum)
}
