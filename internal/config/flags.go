package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-m string   storage mode: postgres or memory
//	-d string   PostgreSQL DSN
//	-t int      command timeout, seconds
//	-l int      login attempts per minute
//	-v string   log level
//
// Only these flags are read from os.Args; -c/-config is handled by parseJson.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-m", "-d", "-t", "-l", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.StorageMode, "m", config.StorageMode, "storage mode (postgres|memory)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	commandTimeout := fs.Int("t", int(config.CommandTimeout.Seconds()), "command timeout (in seconds)")
	fs.IntVar(&config.LoginAttemptsPerMinute, "l", config.LoginAttemptsPerMinute, "login attempts per minute")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// only an explicit -t overrides the JSON and env value
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.CommandTimeout = time.Duration(*commandTimeout) * time.Second
		}
	})
}
