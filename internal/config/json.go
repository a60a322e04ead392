package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/mindfulmoments/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell a missing key apart from a zero value.
type jsonConfig struct {
	DataDir       *string `json:"data_dir"`
	UsersFile     *string `json:"users_file"`
	EntriesFile   *string `json:"entries_file"`
	StorageDriver *string `json:"storage_driver"`
	SQLiteFile    *string `json:"sqlite_file"`
	BcryptCost    *int    `json:"bcrypt_cost"`
	LogLevel      *string `json:"log_level"`
	LogOutput     *string `json:"log_output"`
}

// parseJSON overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag it does nothing.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlagFrom(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.UsersFile, jc.UsersFile)
	setString(&cfg.EntriesFile, jc.EntriesFile)
	setString(&cfg.StorageDriver, jc.StorageDriver)
	setString(&cfg.SQLiteFile, jc.SQLiteFile)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogOutput, jc.LogOutput)
	if jc.BcryptCost != nil {
		cfg.BcryptCost = *jc.BcryptCost
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
