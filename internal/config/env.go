package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	envStorage        = "SCHEDULER_STORAGE"
	envDatabaseDSN    = "SCHEDULER_DATABASE_DSN"
	envCommandTimeout = "SCHEDULER_COMMAND_TIMEOUT"
	envLoginRate      = "SCHEDULER_LOGIN_RATE"
	envLogLevel       = "SCHEDULER_LOG_LEVEL"
)

// envFile is loaded into the process environment if it exists. Variables
// already set are not overwritten.
var envFile = ".env"

// parseEnv overlays SCHEDULER_* variables. SCHEDULER_COMMAND_TIMEOUT takes
// a duration ("5s") or whole seconds. Malformed values panic.
func parseEnv(config *Config) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := os.LookupEnv(envStorage); ok {
		config.StorageMode = v
	}
	if v, ok := os.LookupEnv(envDatabaseDSN); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv(envCommandTimeout); ok {
		d, err := parseSeconds(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", envCommandTimeout, err))
		}
		config.CommandTimeout = d
	}
	if v, ok := os.LookupEnv(envLoginRate); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", envLoginRate, err))
		}
		config.LoginAttemptsPerMinute = n
	}
	if v, ok := os.LookupEnv(envLogLevel); ok {
		config.LogLevel = v
	}
}

func parseSeconds(v string) (time.Duration, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(v)
}
