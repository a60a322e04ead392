package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// dotenvFile is read into the process environment when it exists. Variables
// already set in the environment are not overridden.
var dotenvFile = ".env"

// parseEnv overlays Config with JOURNAL_* environment variables:
//
//	JOURNAL_DATA_DIR      data directory
//	JOURNAL_STORAGE       storage driver
//	JOURNAL_SQLITE_FILE   sqlite database file name
//	JOURNAL_BCRYPT_COST   bcrypt cost factor
//	JOURNAL_LOG_LEVEL     log level
//	JOURNAL_LOG_OUTPUT    stderr, stdout, discard or a file path
//
// Unset or empty variables leave the field unchanged.
func parseEnv(cfg *Config) error {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", dotenvFile, err)
	}

	v := viper.New()
	v.SetEnvPrefix("journal")
	v.AutomaticEnv()

	fields := map[string]*string{
		"data_dir":    &cfg.DataDir,
		"storage":     &cfg.StorageDriver,
		"sqlite_file": &cfg.SQLiteFile,
		"log_level":   &cfg.LogLevel,
		"log_output":  &cfg.LogOutput,
	}
	for key, dst := range fields {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}

	if v.IsSet("bcrypt_cost") {
		cost, err := strconv.Atoi(v.GetString("bcrypt_cost"))
		if err != nil {
			return fmt.Errorf("JOURNAL_BCRYPT_COST: %w", err)
		}
		cfg.BcryptCost = cost
	}
	return nil
}
