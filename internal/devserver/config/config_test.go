package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":3000", c.Addr)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 24*time.Hour, c.TokenValidity)
	assert.Equal(t, 20.0, c.RateLimit)
	assert.Equal(t, 40, c.RateBurst)
}

func TestLoadConfig_Layers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"addr": ":4000",
		"secret_key": "from-json",
		"token_validity": "2h",
		"rate_burst": 5
	}`), 0o600))

	cfg, err := LoadConfig(
		[]string{"-c", path, "-r", "0"},
		[]string{"MYRECORDS_DEV_SECRET_KEY=from-env", "MYRECORDS_DEV_LOG_FORMAT=text"},
	)
	require.NoError(t, err)

	want := Config{
		Addr:          ":4000",
		SecretKey:     "from-env",
		TokenValidity: 2 * time.Hour,
		RateLimit:     0,
		RateBurst:     5,
		LogLevel:      "info",
		LogFormat:     "text",
	}
	assert.Empty(t, cmp.Diff(want, *cfg))
}

func TestLoadConfig_Errors(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"token_validity": "forever"}`), 0o600))

	for name, args := range map[string][]string{
		"bad json duration": {"-c", bad},
		"missing file":      {"-c", filepath.Join(t.TempDir(), "none.json")},
		"bad flag":          {"-b", "many"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(args, nil)
			require.Error(t, err)
		})
	}

	_, err := LoadConfig(nil, []string{"MYRECORDS_DEV_RATE_BURST=lots"})
	require.Error(t, err)
}
