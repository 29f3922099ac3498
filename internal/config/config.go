package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aoc-tools/aocgen/internal/branding"
	"github.com/aoc-tools/aocgen/internal/calendar"
	"github.com/aoc-tools/aocgen/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
	envFile  = ".env"
)

// Config keys.
const (
	KeyTimezone  = "timezone"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
)

// ErrUnknownKey is returned for keys the CLI does not read.
var ErrUnknownKey = errors.New("unknown config key")

// Setting describes one user-settable key.
type Setting struct {
	Key         string
	Description string
	validate    func(string) error
}

var settings = []Setting{
	{
		Key:         KeyTimezone,
		Description: "IANA zone used to pick today's puzzle",
		validate: func(v string) error {
			_, err := calendar.NewZoned(v)
			return err
		},
	},
	{
		Key:         KeyLogLevel,
		Description: "debug, info, warn or error",
		validate: func(v string) error {
			_, err := logger.ParseLevel(v)
			return err
		},
	},
	{
		Key:         KeyLogFormat,
		Description: "text or json",
		validate: func(v string) error {
			_, err := logger.ParseFormat(v)
			return err
		},
	},
}

// Settings returns the known keys in display order.
func Settings() []Setting {
	return slices.Clone(settings)
}

// Validate checks value for key. Unknown keys wrap ErrUnknownKey.
func Validate(key, value string) error {
	for _, s := range settings {
		if s.Key == key {
			return s.validate(value)
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// Dir returns the path to the config directory (~/.aocgen/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.aocgen/config.yaml).
// AOCGEN_CONFIG overrides it.
func FilePath() string {
	if v := os.Getenv(branding.EnvVar("CONFIG")); v != "" {
		return v
	}
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the directory holding the config file.
func EnsureDir() error {
	dir := filepath.Dir(FilePath())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyTimezone, calendar.DefaultZone)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogFormat, "text")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// LoadDotEnv loads root/.env into the process environment when present.
// Variables already set in the environment win.
func LoadDotEnv(root string) error {
	path := filepath.Join(root, envFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set validates and writes a config key-value pair and saves the config file.
// Only the file's own keys are written back, never flag or environment values.
func Set(key, value string) error {
	if err := Validate(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if err := file.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	file.Set(key, value)

	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, value)
	return nil
}

// Logger returns the logger settings from the loaded configuration.
func Logger() (logger.Config, error) {
	cfg := logger.DefaultConfig()
	level, err := logger.ParseLevel(viper.GetString(KeyLogLevel))
	if err != nil {
		return cfg, err
	}
	cfg.Level = level
	format, err := logger.ParseFormat(viper.GetString(KeyLogFormat))
	if err != nil {
		return cfg, err
	}
	cfg.Format = format
	return cfg, nil
}
