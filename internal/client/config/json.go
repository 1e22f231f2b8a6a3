package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/myrecords/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// Pointer fields tell "absent" apart from "zero"; only present keys
// overwrite the Config.
type JsonConfig struct {
	APIBaseURL       *string         `json:"api_base_url"`
	SessionDBPath    *string         `json:"session_db"`
	RequestTimeout   *timex.Duration `json:"request_timeout"`
	RateLimit        *float64        `json:"rate_limit"`
	LogLevel         *string         `json:"log_level"`
	LogFormat        *string         `json:"log_format"`
	PhoneCountryCode *string         `json:"phone_country_code"`
	MetricsAddr      *string         `json:"metrics_addr"`
}

// parseJson overlays cfg with values loaded from the JSON file at path.
// An empty path loads nothing.
func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.SessionDBPath, jc.SessionDBPath)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.PhoneCountryCode, jc.PhoneCountryCode)
	setString(&cfg.MetricsAddr, jc.MetricsAddr)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RateLimit != nil {
		cfg.RateLimit = *jc.RateLimit
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
