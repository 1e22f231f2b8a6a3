package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/myrecords/internal/flagx"
)

var knownFlags = []string{"-a", "-db", "-t", "-r", "-log-level", "-log-format", "-phone-cc", "-m"}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string          backend base URL
//	-db string         session database file
//	-t duration        request timeout, e.g. 5s
//	-r float           outbound requests per second
//	-log-level string  debug, info, warn or error
//	-log-format string text or json
//	-phone-cc string   phone mask country code
//	-m string          metrics listen address
//
// args is filtered through flagx.FilterArgs so flags owned by other
// components (-c, -e) do not trip the parser.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("myrecords", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "backend base URL")
	fs.StringVar(&cfg.SessionDBPath, "db", cfg.SessionDBPath, "session database file")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.Float64Var(&cfg.RateLimit, "r", cfg.RateLimit, "outbound requests per second (0 = unlimited)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	fs.StringVar(&cfg.PhoneCountryCode, "phone-cc", cfg.PhoneCountryCode, "phone country code")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics listen address")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
