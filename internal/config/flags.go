package config

import (
	"flag"
	"os"

	"github.com/easeshop/easeshop/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   path of the local store database (default from Config)
//	-k string   session signing secret (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "path of the local store database")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "session signing secret")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
