package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/mindfulmoments/internal/common"
	"github.com/go-playground/validator/v10"
)

const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

// Config holds runtime settings for the journal.
//
// File names are resolved inside DataDir unless they are absolute
// (see UsersPath, EntriesPath and SQLitePath).
type Config struct {
	DataDir       string `validate:"required"`
	UsersFile     string `validate:"required"`
	EntriesFile   string `validate:"required"`
	StorageDriver string `validate:"oneof=json sqlite"`
	SQLiteFile    string `validate:"required_if=StorageDriver sqlite"`
	BcryptCost    int    `validate:"min=4,max=14"`
	LogLevel      string `validate:"oneof=debug info warn error"`
	LogOutput     string `validate:"required"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "data_storage"
	c.UsersFile = "user_accounts.json"
	c.EntriesFile = "journal_entries.json"
	c.StorageDriver = DriverJSON
	c.SQLiteFile = "journal.db"
	c.BcryptCost = 12
	c.LogLevel = "info"
	c.LogOutput = "stderr"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones. The result is validated.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown drivers and log levels and an out-of-range bcrypt
// cost.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: config: %w", common.ErrValidation, err)
	}
	return nil
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

func (c *Config) UsersPath() string {
	return c.resolve(c.UsersFile)
}

func (c *Config) EntriesPath() string {
	return c.resolve(c.EntriesFile)
}

func (c *Config) SQLitePath() string {
	return c.resolve(c.SQLiteFile)
}
