//go:build alternative_driver

package main

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// openDatabase uses the CGO-free driver built on modernc.org/sqlite.
func openDatabase(dsn string, gormConfig *gorm.Config) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(dsn), gormConfig)
}
