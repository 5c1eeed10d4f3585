package config

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
	"path"
	"path/filepath"
)

var ErrNoDirectories = errors.New("at least one directory must be specified")

type yamlConfig struct {
	IsDebug             bool     `yaml:"debug"`
	LogFilePath         string   `yaml:"log_file_path"`
	DBPath              string   `yaml:"db_path"`
	ShowProgress        bool     `yaml:"show_progress"`
	FolderNamesToIgnore []string `yaml:"folder_names_to_ignore"`
}

type Config struct {
	IsDebug             bool
	LogFilePath         string
	DBPath              string
	ShowProgress        bool
	FolderNamesToIgnore []string

	// Set from the command line
	Delete        bool
	ForceReadonly bool
	Directories   []string
}

// Load parses the embedded defaults and overlays the user's config file on
// top. With no explicit path the per-user config file is used if present.
func Load(defaultConfigData []byte, configFilePath string) (*Config, error) {
	config := &yamlConfig{}

	err := yaml.Unmarshal(defaultConfigData, config)

	if err != nil {
		return nil, fmt.Errorf("could not parse default config: %w", err)
	}

	if configFilePath == "" {
		configFilePath = userConfigFilePath()
	}

	if configFilePath != "" {
		err = parseConfigFile(configFilePath, config)

		if err != nil {
			return nil, err
		}
	}

	return &Config{
		IsDebug:             config.IsDebug,
		LogFilePath:         config.LogFilePath,
		DBPath:              config.DBPath,
		ShowProgress:        config.ShowProgress,
		FolderNamesToIgnore: config.FolderNamesToIgnore,
	}, nil
}

func (c *Config) Validate() error {
	if len(c.Directories) == 0 {
		return ErrNoDirectories
	}

	return nil
}

func userConfigFilePath() string {
	configDir, err := os.UserConfigDir()

	if err != nil {
		return ""
	}

	configFilePath := filepath.Join(configDir, "empty-dirs", "config.yaml")

	if _, err := os.Stat(configFilePath); err != nil {
		return ""
	}

	return configFilePath
}

func parseConfigFile(configFilePath string, config *yamlConfig) error {
	yamlFile, err := os.ReadFile(path.Clean(configFilePath))

	if err != nil {
		return fmt.Errorf("could not read config file: %w", err)
	}

	err = yaml.Unmarshal(yamlFile, config)

	if err != nil {
		return fmt.Errorf("could not parse config file \"%s\": %w", configFilePath, err)
	}

	return nil
}
