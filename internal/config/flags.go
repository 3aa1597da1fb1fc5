package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/notekeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-o string   data directory (default from Config)
//	-d string   database file name inside the data directory
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-o", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "o", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.DatabaseFile, "d", cfg.DatabaseFile, "database file name")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
