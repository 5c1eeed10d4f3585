//go:build !alternative_driver

package main

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openDatabase uses the mattn driver, which needs CGO. Build with the
// alternative_driver tag for a pure Go binary.
func openDatabase(dsn string, gormConfig *gorm.Config) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(dsn), gormConfig)
}
