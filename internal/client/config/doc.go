// Package config loads runtime configuration for the myrecords client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Optional dotenv file selected with -e or -env.
//  4. MYRECORDS_* environment variables, which win over the dotenv file.
//  5. Command-line flags, which override everything else.
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "5s" or integer
// nanoseconds. Absent keys keep the earlier value:
//
//	{
//	  "api_base_url": "http://localhost:3000",
//	  "session_db": "session.db",
//	  "request_timeout": "10s",
//	  "rate_limit": 5,
//	  "log_level": "info",
//	  "log_format": "json",
//	  "phone_country_code": "55",
//	  "metrics_addr": ":9100"
//	}
//
// # Environment
//
//	MYRECORDS_API_BASE_URL, MYRECORDS_SESSION_DB, MYRECORDS_REQUEST_TIMEOUT,
//	MYRECORDS_RATE_LIMIT, MYRECORDS_LOG_LEVEL, MYRECORDS_LOG_FORMAT,
//	MYRECORDS_PHONE_COUNTRY_CODE, MYRECORDS_METRICS_ADDR
package config
