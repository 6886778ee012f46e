// Package config loads runtime configuration for the SME Mentor CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment: a .env file in the working directory (if present) is
//     loaded first, then SME_* variables are read.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the REST backend
//	-d string   path of the local session database
//	-t int      request timeout in seconds (0 keeps the transport default)
//	-l string   log level: debug, info, warn, error
//
// Environment
//
//	SME_API_URL          base URL of the REST backend
//	SME_DB_PATH          path of the local session database
//	SME_REQUEST_TIMEOUT  Go duration, e.g. "15s"
//	SME_LOG_LEVEL        log level
//	SME_LOG_FORMAT       "json" or "console"
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:8000",
//	  "db_path": "smementor.db",
//	  "request_timeout": "15s",
//	  "log_level": "info",
//	  "log_format": "console"
//	}
package config
