package main

import (
	"empty-dirs/config"
	"empty-dirs/utils"
	"gorm.io/gorm"
)

type Context struct {
	Config   *config.Config
	FS       FileSystem
	DB       *gorm.DB
	Progress *utils.Progress
}
