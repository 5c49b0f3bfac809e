package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/flagx"
	"github.com/dmitrijs2005/vaxscheduler/internal/timex"
)

// JsonConfig is the on-disk form of Config. CommandTimeout accepts "5s"
// style strings or integer nanoseconds.
type JsonConfig struct {
	StorageMode            string         `json:"storage_mode"`
	DatabaseDSN            string         `json:"database_dsn"`
	CommandTimeout         timex.Duration `json:"command_timeout"`
	LoginAttemptsPerMinute int            `json:"login_attempts_per_minute"`
	LogLevel               string         `json:"log_level"`
}

// parseJson overlays values from the file named by -c or -config. Fields
// missing from the file keep their current value. An unreadable file or
// invalid JSON panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.StorageMode != "" {
		config.StorageMode = c.StorageMode
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.CommandTimeout.Duration != 0 {
		config.CommandTimeout = time.Duration(c.CommandTimeout.Duration)
	}
	if c.LoginAttemptsPerMinute != 0 {
		config.LoginAttemptsPerMinute = c.LoginAttemptsPerMinute
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
