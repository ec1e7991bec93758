package config

// loader.go - configuration loading from environment variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (this file)
//   3. Defaults   (defaults.go)

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the WEBTRANSCAT_ prefix.  Boolean
// values accept "1", "true", "yes" (case-insensitive).

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  This should be called BEFORE
// CLI flag parsing so that flags take precedence.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv("WEBTRANSCAT_URL"); v != "" {
		cfg.URL = v
	}
	if v := envInt("WEBTRANSCAT_TIMEOUT"); v > 0 {
		cfg.Timeout = time.Duration(v) * time.Second
	}
	if envBool("WEBTRANSCAT_INSECURE") {
		cfg.Insecure = true
	}
	if envBool("WEBTRANSCAT_UNIDIRECTIONAL") {
		cfg.Unidirectional = true
	}
	if envBool("WEBTRANSCAT_ONE_MESSAGE") {
		cfg.OneMessage = true
	}

	// Output
	if v := envInt("WEBTRANSCAT_VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
	if envBool("WEBTRANSCAT_QUIET") {
		cfg.Quiet = true
	}
}

// ── helpers ──────────────────────────────────────────────────────────

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes"
}
