package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/myrecords/internal/flagx"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "MYRECORDS_"

// Config holds runtime settings for the myrecords client.
//
// Fields:
//   - APIBaseURL: scheme and host of the REST backend.
//   - SessionDBPath: SQLite file holding the persisted session.
//   - RequestTimeout: per-request HTTP timeout, zero means none.
//   - RateLimit: outbound requests per second, zero means unlimited.
//   - LogLevel, LogFormat: slog level name and "text" or "json".
//   - PhoneCountryCode: literal digits of the phone mask prefix.
//   - MetricsAddr: listen address for /metrics, empty disables it.
type Config struct {
	APIBaseURL       string        `env:"API_BASE_URL"`
	SessionDBPath    string        `env:"SESSION_DB"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT"`
	RateLimit        float64       `env:"RATE_LIMIT"`
	LogLevel         string        `env:"LOG_LEVEL"`
	LogFormat        string        `env:"LOG_FORMAT"`
	PhoneCountryCode string        `env:"PHONE_COUNTRY_CODE"`
	MetricsAddr      string        `env:"METRICS_ADDR"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000"
	c.SessionDBPath = "session.db"
	c.RequestTimeout = 0
	c.RateLimit = 0
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.PhoneCountryCode = "55"
	c.MetricsAddr = ""
}

// LoadConfig constructs a Config from args (normally os.Args[1:]) and the
// process environment. Later sources take precedence over earlier ones:
// defaults, JSON file, .env file, environment, flags.
func LoadConfig(args []string, environ []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	src := flagx.SourceFlags(args)
	if err := parseJson(cfg, src.ConfigFile); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, src.EnvFile, environ); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values no component can run with.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("config: api base url is empty")
	}
	if c.SessionDBPath == "" {
		return fmt.Errorf("config: session db path is empty")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("config: negative request timeout %s", c.RequestTimeout)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("config: negative rate limit %v", c.RateLimit)
	}
	return nil
}
