// Package config assembles the scheduler's runtime settings. Sources are
// applied in order, each overriding the previous one: built-in defaults, an
// optional JSON file (-c/-config), a .env file and SCHEDULER_* environment
// variables, and finally command-line flags.
package config
