package config

import "os"

// parseEnv overlays Config with values from the environment. The original
// mobile client honored an API-URL environment override ahead of its
// platform defaults; the CLI keeps the same escape hatch.
//
// Recognized variables:
//
//	FRESHKEEP_API_URL   base URL of the backend API
//	FRESHKEEP_DATA_DIR  data directory for local client state
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv("FRESHKEEP_API_URL"); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv("FRESHKEEP_DATA_DIR"); ok && v != "" {
		cfg.DataDir = v
	}
}
