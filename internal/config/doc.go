// Package config loads runtime configuration for the authdesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path/DSN of the local sqlite database
//	-s int      submit delay (milliseconds)
//	-l string   log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the delay, so values can be either
// strings like "800ms" or integer nanoseconds:
//
//	{
//	  "database_dsn": "authdesk.db",
//	  "submit_delay": "800ms",
//	  "log_level": "info"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
