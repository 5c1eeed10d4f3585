package models

import "time"

type Run struct {
	ID               uint   `gorm:"primarykey"`
	Fingerprint      string `gorm:"index"`
	Roots            string
	Delete           bool
	ForceReadonly    bool
	EmptyCount       int64
	WarningsCount    int64
	StartedAt        time.Time
	FinishedAt       time.Time
	EmptyDirectories []EmptyDirectory
	Warnings         []Warning
}

type EmptyDirectory struct {
	ID      uint `gorm:"primarykey"`
	RunID   uint `gorm:"index"`
	Path    string
	Deleted bool
}

type Warning struct {
	ID      uint `gorm:"primarykey"`
	RunID   uint `gorm:"index"`
	Path    string
	Message string
}
