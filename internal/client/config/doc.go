// Package config loads runtime configuration for the Hubbub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with a .env file loaded first when present.
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-u string   base URL of the Hubbub API
//	-t int      request timeout (seconds)
//	-d string   path of the local database file
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "30s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://api.hubbub.example",
//	  "request_timeout": "30s",
//	  "database_path": "hubbub.db"
//	}
package config
