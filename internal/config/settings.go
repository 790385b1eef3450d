package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	mgerrors "github.com/Aman-CERP/minigrep/internal/errors"
	"github.com/Aman-CERP/minigrep/internal/logging"
)

// Environment variables that override the logging settings.
const (
	EnvLogLevel     = "MINIGREP_LOG_LEVEL"
	EnvLogFile      = "MINIGREP_LOG_FILE"
	EnvLogMaxSizeMB = "MINIGREP_LOG_MAX_SIZE_MB"
	EnvLogMaxFiles  = "MINIGREP_LOG_MAX_FILES"
)

// Settings holds optional user preferences. Settings only affect logging;
// they never change which lines match.
type Settings struct {
	Version int             `yaml:"version" json:"version"`
	Logging LoggingSettings `yaml:"logging" json:"logging"`
}

// LoggingSettings configures the debug log file.
type LoggingSettings struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level" json:"level"`
	// File is the log file path. Empty disables logging unless --debug is set.
	File string `yaml:"file" json:"file"`
	// MaxSizeMB is the size in MB that triggers rotation.
	MaxSizeMB int `yaml:"max_size_mb" json:"max_size_mb"`
	// MaxFiles is the number of rotated files to keep.
	MaxFiles int `yaml:"max_files" json:"max_files"`
}

// NewSettings returns the built-in defaults.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Logging: LoggingSettings{
			Level:     "info",
			File:      "",
			MaxSizeMB: 10,
			MaxFiles:  5,
		},
	}
}

// SettingsPath returns the user settings file location:
//   - $XDG_CONFIG_HOME/minigrep/config.yaml (if XDG_CONFIG_HOME is set)
//   - ~/.config/minigrep/config.yaml (default)
func SettingsPath(lookupEnv LookupEnvFunc) string {
	if lookupEnv != nil {
		if xdg, ok := lookupEnv("XDG_CONFIG_HOME"); ok && xdg != "" {
			return filepath.Join(xdg, "minigrep", "config.yaml")
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "minigrep", "config.yaml")
	}
	return filepath.Join(home, ".config", "minigrep", "config.yaml")
}

// LoadSettings loads settings in order of increasing precedence:
//  1. Hardcoded defaults
//  2. User settings file (see SettingsPath)
//  3. Environment variables (MINIGREP_*)
//
// A missing settings file is not an error.
func LoadSettings(lookupEnv LookupEnvFunc) (*Settings, error) {
	s := NewSettings()

	path := SettingsPath(lookupEnv)
	if err := s.loadYAML(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	s.applyEnvOverrides(lookupEnv)

	if err := s.Validate(); err != nil {
		return nil, mgerrors.ConfigError(fmt.Sprintf("invalid settings: %v", err), err).
			WithDetail("path", path)
	}
	return s, nil
}

// loadYAML loads and merges settings from a YAML file. A missing file is
// reported through a ConfigError that wraps fs.ErrNotExist.
func (s *Settings) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return mgerrors.ConfigError(fmt.Sprintf("failed to read settings file %s", path), err)
	}

	var parsed Settings
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return mgerrors.ConfigError(fmt.Sprintf("failed to parse settings file %s", path), err)
	}

	s.mergeWith(&parsed)
	return nil
}

// mergeWith merges non-zero values from other into s.
func (s *Settings) mergeWith(other *Settings) {
	if other.Version != 0 {
		s.Version = other.Version
	}
	if other.Logging.Level != "" {
		s.Logging.Level = other.Logging.Level
	}
	if other.Logging.File != "" {
		s.Logging.File = other.Logging.File
	}
	if other.Logging.MaxSizeMB != 0 {
		s.Logging.MaxSizeMB = other.Logging.MaxSizeMB
	}
	if other.Logging.MaxFiles != 0 {
		s.Logging.MaxFiles = other.Logging.MaxFiles
	}
}

// applyEnvOverrides applies MINIGREP_* environment variable overrides.
func (s *Settings) applyEnvOverrides(lookupEnv LookupEnvFunc) {
	if lookupEnv == nil {
		return
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		s.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFile); ok && v != "" {
		s.Logging.File = v
	}
	if v, ok := lookupEnv(EnvLogMaxSizeMB); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.Logging.MaxSizeMB = n
		}
	}
	if v, ok := lookupEnv(EnvLogMaxFiles); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.Logging.MaxFiles = n
		}
	}
}

// LogEnvSet reports whether any MINIGREP_LOG_* override is set.
func LogEnvSet(lookupEnv LookupEnvFunc) bool {
	if lookupEnv == nil {
		return false
	}
	for _, key := range []string{EnvLogLevel, EnvLogFile, EnvLogMaxSizeMB, EnvLogMaxFiles} {
		if _, ok := lookupEnv(key); ok {
			return true
		}
	}
	return false
}

// Validate returns an error if the settings are unusable.
func (s *Settings) Validate() error {
	if _, err := logging.ParseLevel(s.Logging.Level); err != nil {
		return fmt.Errorf("logging.level must be 'debug', 'info', 'warn', or 'error', got %s", s.Logging.Level)
	}
	if s.Logging.MaxSizeMB <= 0 {
		return fmt.Errorf("logging.max_size_mb must be positive, got %d", s.Logging.MaxSizeMB)
	}
	if s.Logging.MaxFiles <= 0 {
		return fmt.Errorf("logging.max_files must be positive, got %d", s.Logging.MaxFiles)
	}
	return nil
}
