package main

import (
	"empty-dirs/config"
	"empty-dirs/models"
	"fmt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func initDb(config *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(getLogLevel(config)),
	}

	return connect(config.DBPath, gormConfig)
}

func getLogLevel(config *config.Config) logger.LogLevel {
	if config.IsDebug {
		return logger.Info
	}

	return logger.Silent
}

func connect(dsn string, gormConfig *gorm.Config) (*gorm.DB, error) {
	db, err := openDatabase(dsn, gormConfig)

	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	err = db.AutoMigrate(
		&models.Run{},
		&models.EmptyDirectory{},
		&models.Warning{},
	)

	if err != nil {
		return nil, fmt.Errorf("failed to migrate the database: %w", err)
	}

	return db, nil
}
