package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_OverlaysValues(t *testing.T) {
	path := writeConfigFile(t, `{
		"api_base_url": "https://api.freshkeep.app",
		"request_timeout": "15s",
		"data_dir": "/var/lib/freshkeep"
	}`)

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cli", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	require.Equal(t, "https://api.freshkeep.app", cfg.APIBaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, "/var/lib/freshkeep", cfg.DataDir)
}

func TestParseJSON_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"api_base_url": "http://partial:8000"}`)

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cli", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	require.Equal(t, "http://partial:8000", cfg.APIBaseURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, ".", cfg.DataDir)
}

func TestParseJSON_NoConfigFlagIsNoop(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cli"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	require.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
}

func TestParseJSON_MalformedFilePanics(t *testing.T) {
	path := writeConfigFile(t, `{"api_base_url": `)

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cli", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	require.Panics(t, func() { parseJSON(cfg) })
}
