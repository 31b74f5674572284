// Package config loads runtime configuration for the BRGY KONEK terminal
// client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the BRGY KONEK API
//	-t int      per-request timeout (seconds)
//	-d string   path of the local session database
//	-r          require a clearance document on registration
//	-l string   log level (debug, info, warn, error)
//	-i int      online status check interval (seconds, 0 disables)
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "10s" or integer
// nanoseconds. Keys that are absent keep their default:
//
//	{
//	  "api_base_url": "http://127.0.0.1:8080",
//	  "request_timeout": "10s",
//	  "database_path": "brgy-konek.db",
//	  "require_clearance": false,
//	  "log_level": "info",
//	  "online_check_interval": "30s"
//	}
package config
