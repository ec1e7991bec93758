// Package config defines the runtime configuration for webtranscat and
// provides helpers for parsing and validating the target URL.
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"
)

// Config holds every tuneable for a single webtranscat session.  It is
// populated once at startup (defaults, then environment, then flags)
// and never mutated afterwards.
type Config struct {
	// ── Connection ───────────────────────────────────────────────────
	URL     string        // WebTransport endpoint, https://host[:port]/path
	Timeout time.Duration // dial/handshake timeout; 0 = no limit

	// ── Behaviour ────────────────────────────────────────────────────
	Insecure       bool // skip certificate verification
	Unidirectional bool // -u: receive only, no stdin forwarding
	OneMessage     bool // -1: exit after the first received message

	// ── Output ───────────────────────────────────────────────────────
	Verbose int  // -v count
	Quiet   bool // -q: wins over any -v
}

// ParseURL validates a target URL for WebTransport use and returns the
// parsed form.  WebTransport sessions are established over HTTP/3, so
// the scheme must be https and a host is required.  A URL without an
// explicit port is normalized to DefaultWebTransportPort.
func ParseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if u.Scheme != "https" {
		return nil, fmt.Errorf("URL %q: scheme must be https, got %q", raw, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("URL %q: host is required", raw)
	}
	if u.Port() == "" {
		u.Host = net.JoinHostPort(u.Hostname(), strconv.Itoa(DefaultWebTransportPort))
	}
	return u, nil
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("target URL is required (use --help for usage)")
	}
	if _, err := ParseURL(c.URL); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if c.Verbose < 0 {
		return fmt.Errorf("verbosity must not be negative")
	}
	return nil
}
