package config

import (
	"flag"

	"github.com/dmitrijs2005/mindfulmoments/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   data directory
//	-s string   storage driver (json or sqlite)
//	-l string   log level
//
// args are filtered with flagx.FilterArgs first so that flags owned by other
// parsers (-c/-config) don't cause errors here.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-s", "-l"})

	fs := flag.NewFlagSet("journal", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "directory holding the journal data files")
	fs.StringVar(&cfg.StorageDriver, "s", cfg.StorageDriver, "storage driver: json or sqlite")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn or error")

	return fs.Parse(args)
}
