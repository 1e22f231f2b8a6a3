package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with MYRECORDS_* variables. Values from the dotenv
// file at envFile are used only where environ does not set the same name.
func parseEnv(cfg *Config, envFile string, environ []string) error {
	vars := map[string]string{}
	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		if err != nil {
			return fmt.Errorf("read env file: %w", err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}
	for k, v := range env.ToMap(environ) {
		vars[k] = v
	}

	if err := env.ParseWithOptions(cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: vars,
	}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
