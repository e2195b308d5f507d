package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for an annotation session
type Config struct {
	// Image directory
	Dataset DatasetConfig `yaml:"dataset" toml:"dataset" json:"dataset"`

	// CSV ledger location
	Ledger LedgerConfig `yaml:"ledger" toml:"ledger" json:"ledger"`

	// How images are shown to the annotator
	Display DisplayConfig `yaml:"display" toml:"display" json:"display"`

	// Notification preferences
	Notifications NotificationConfig `yaml:"notifications" toml:"notifications" json:"notifications"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" toml:"logging" json:"logging"`
}

// DatasetConfig holds the image directory configuration
type DatasetConfig struct {
	Directory string `yaml:"directory" toml:"directory" json:"directory"`
}

// LedgerConfig holds the annotation ledger configuration
type LedgerConfig struct {
	Path string `yaml:"path" toml:"path" json:"path"`
	Lock bool   `yaml:"lock" toml:"lock" json:"lock"`
}

// DisplayConfig selects the image viewer
type DisplayConfig struct {
	// Viewer is "auto", "none" or "command"
	Viewer string `yaml:"viewer" toml:"viewer" json:"viewer"`
	// Command is used when Viewer is "command"; the image path is appended
	Command []string `yaml:"command" toml:"command" json:"command"`
}

// NotificationConfig holds notification preferences
type NotificationConfig struct {
	Enabled    bool `yaml:"enabled" toml:"enabled" json:"enabled"`
	OnComplete bool `yaml:"on_complete" toml:"on_complete" json:"on_complete"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" toml:"level" json:"level"`
	File  string `yaml:"file" toml:"file" json:"file"`
}

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Directory: "dataset-master/",
		},
		Ledger: LedgerConfig{
			Path: "annotations.csv",
			Lock: true,
		},
		Display: DisplayConfig{
			Viewer: "auto",
		},
		Notifications: NotificationConfig{
			Enabled:    false,
			OnComplete: true,
		},
		Logging: LoggingConfig{
			Level: "warn",
			File:  "",
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	if dir := os.Getenv("ANNOTATE_DATASET_DIR"); dir != "" {
		c.Dataset.Directory = dir
	}
	if path := os.Getenv("ANNOTATE_LEDGER"); path != "" {
		c.Ledger.Path = path
	}
	if lock := os.Getenv("ANNOTATE_LEDGER_LOCK"); lock != "" {
		c.Ledger.Lock = strings.ToLower(lock) == "true"
	}
	if viewer := os.Getenv("ANNOTATE_VIEWER"); viewer != "" {
		c.Display.Viewer = viewer
	}
	if command := os.Getenv("ANNOTATE_VIEWER_COMMAND"); command != "" {
		c.Display.Command = strings.Fields(command)
	}
	if notifEnabled := os.Getenv("ANNOTATE_NOTIFICATIONS_ENABLED"); notifEnabled != "" {
		c.Notifications.Enabled = strings.ToLower(notifEnabled) == "true"
	}
	if logLevel := os.Getenv("ANNOTATE_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFile := os.Getenv("ANNOTATE_LOG_FILE"); logFile != "" {
		c.Logging.File = logFile
	}

	return nil
}

// LoadFromFile loads configuration from a YAML or TOML file. The format
// is chosen by extension; anything but .toml is read as YAML.
func (c *Config) LoadFromFile(path string) error {
	if path == "" {
		path = FindConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.NewDecoder(file).Decode(c)
	} else {
		err = yaml.NewDecoder(file).Decode(c)
		if errors.Is(err, io.EOF) {
			err = nil // empty file
		}
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// FindConfigFile searches for a config file in standard locations
func FindConfigFile() string {
	home := os.Getenv("HOME")
	locations := []string{
		"annotate.yaml",
		"annotate.yml",
		".annotate.yaml",
		".annotate.yml",
		"annotate.toml",
		filepath.Join(home, ".config", "annotate", "config.yaml"),
		filepath.Join(home, ".config", "annotate", "config.yml"),
		filepath.Join(home, ".config", "annotate", "config.toml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.Dataset.Directory == "" {
		errs = append(errs, errors.New("dataset directory is required"))
	}
	if c.Ledger.Path == "" {
		errs = append(errs, errors.New("ledger path is required"))
	}

	switch strings.ToLower(c.Display.Viewer) {
	case "auto", "none":
	case "command":
		if len(c.Display.Command) == 0 {
			errs = append(errs, errors.New("display command is required when viewer is \"command\""))
		}
	default:
		errs = append(errs, fmt.Errorf("invalid viewer %q", c.Display.Viewer))
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "disabled": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeCommandLineFlags merges command line flags into the configuration
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if dir, ok := flags["dataset"].(string); ok && dir != "" {
		c.Dataset.Directory = dir
	}
	if path, ok := flags["ledger"].(string); ok && path != "" {
		c.Ledger.Path = path
	}
	if viewer, ok := flags["viewer"].(string); ok && viewer != "" {
		c.Display.Viewer = viewer
	}
	if notify, ok := flags["notifications"].(bool); ok {
		c.Notifications.Enabled = notify
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// Missing .env files are fine
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".annotate.env"))

	config := DefaultConfig()

	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	config.MergeCommandLineFlags(flags)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
