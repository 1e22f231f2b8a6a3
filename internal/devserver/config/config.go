// Package config handles configuration for the development backend,
// including defaults, JSON overlay, environment and command-line flags.
package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/dmitrijs2005/myrecords/internal/flagx"
	"github.com/dmitrijs2005/myrecords/internal/timex"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "MYRECORDS_DEV_"

// Config holds runtime settings for the development backend.
//
// Fields:
//   - Addr: HTTP listen address.
//   - SecretKey: HMAC secret for signing tokens. Do not use the default outside development.
//   - TokenValidity: bearer token lifetime.
//   - RateLimit / RateBurst: requests per second accepted, zero disables limiting.
//   - LogLevel / LogFormat: slog level and "text" or "json".
type Config struct {
	Addr          string        `json:"addr" env:"ADDR"`
	SecretKey     string        `json:"secret_key" env:"SECRET_KEY"`
	TokenValidity time.Duration `json:"-" env:"TOKEN_VALIDITY"`
	RateLimit     float64       `json:"rate_limit" env:"RATE_LIMIT"`
	RateBurst     int           `json:"rate_burst" env:"RATE_BURST"`
	LogLevel      string        `json:"log_level" env:"LOG_LEVEL"`
	LogFormat     string        `json:"log_format" env:"LOG_FORMAT"`
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":3000"
	c.SecretKey = "secretKey"
	c.TokenValidity = 24 * time.Hour
	c.RateLimit = 20
	c.RateBurst = 40
	c.LogLevel = "info"
	c.LogFormat = "json"
}

// LoadConfig builds a Config by applying defaults, then the JSON file named
// by -c, then MYRECORDS_DEV_* variables, and finally flags.
func LoadConfig(args []string, environ []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, flagx.SourceFlags(args).ConfigFile); err != nil {
		return nil, err
	}
	if err := env.ParseWithOptions(cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: env.ToMap(environ),
	}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// jsonConfig mirrors Config with a JSON-friendly duration.
type jsonConfig struct {
	Config
	TokenValidity *timex.Duration `json:"token_validity"`
}

func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	jc := jsonConfig{Config: *cfg}
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	*cfg = jc.Config
	if jc.TokenValidity != nil {
		cfg.TokenValidity = jc.TokenValidity.Duration
	}
	return nil
}

// parseFlags populates Config fields from command-line flags.
//
//	-a string    listen address (e.g. ":3000")
//	-s string    token signing secret
//	-t duration  token validity
//	-r float     requests per second, 0 disables limiting
//	-b int       rate limiter burst
//	-l string    log level
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("devserver", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "listen address")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "token signing secret")
	fs.DurationVar(&cfg.TokenValidity, "t", cfg.TokenValidity, "token validity")
	fs.Float64Var(&cfg.RateLimit, "r", cfg.RateLimit, "requests per second (0 = unlimited)")
	fs.IntVar(&cfg.RateBurst, "b", cfg.RateBurst, "rate limiter burst")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-a", "-s", "-t", "-r", "-b", "-l"})); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
