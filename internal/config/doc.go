// Package config loads runtime configuration for the journal CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed with JOURNAL_, optionally seeded from a
//     .env file in the working directory (see parseEnv).
//  3. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   data directory
//	-s string   storage driver: json or sqlite
//	-l string   log level: debug, info, warn or error
//
// # JSON schema
//
//	{
//	  "data_dir": "data_storage",
//	  "users_file": "user_accounts.json",
//	  "entries_file": "journal_entries.json",
//	  "storage_driver": "json",
//	  "sqlite_file": "journal.db",
//	  "bcrypt_cost": 12,
//	  "log_level": "info",
//	  "log_output": "stderr"
//	}
//
// Fields missing from the file keep the value of the earlier stages.
package config
