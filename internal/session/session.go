// Package session represents a single session lifecycle, binding the
// transport session with I/O endpoints and shared context.
//
// Sessions decouple capabilities from concrete I/O sources — a
// capability doesn't need to know whether it's reading from os.Stdin
// or a test buffer, it just uses the session's Stdin/Stdout.
package session

import (
	"io"

	"webtranscat/internal/metrics"
	"webtranscat/internal/transport"
	"webtranscat/util"
)

// Session encapsulates the runtime context shared by every loop.
// Capabilities operate on sessions rather than on the raw transport,
// enabling clean testing and I/O abstraction.  The Transport handle
// is the only shared mutable resource; it synchronizes its own
// sub-channels, so loops never coordinate through the Session itself.
type Session struct {
	Transport transport.Session
	Stdin     io.Reader
	Stdout    io.Writer
	Logger    *util.Logger
	Metrics   *metrics.Collector
}

// New creates a Session bound to the given transport and I/O pair.
// Metrics may be nil; the collector is nil-safe.
func New(t transport.Session, stdin io.Reader, stdout io.Writer,
	logger *util.Logger, m *metrics.Collector) *Session {
	return &Session{
		Transport: t,
		Stdin:     stdin,
		Stdout:    stdout,
		Logger:    logger,
		Metrics:   m,
	}
}
