package config

import (
	"flag"
	"os"
	"time"

	"github.com/authdesk/authdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path/DSN of the local database (default from Config)
//	-s int      submit delay in milliseconds (default from Config)
//	-l string   log level: debug, info, warn, error
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local database")
	submitDelay := fs.Int("s", int(cfg.SubmitDelay.Milliseconds()), "submit delay (in milliseconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SubmitDelay = time.Duration(*submitDelay) * time.Millisecond
}
