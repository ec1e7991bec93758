package core

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"webtranscat/internal/capability"
	"webtranscat/internal/metrics"
	"webtranscat/internal/session"
	"webtranscat/internal/transport"
	"webtranscat/util"
)

// ConnectMode dials the remote endpoint and races the capability
// loops over the resulting session — the program's only mode.
type ConnectMode struct {
	Dialer       transport.Dialer
	Capabilities []capability.Capability
	URL          string
	Logger       *util.Logger
	Metrics      *metrics.Collector

	// Stdin/Stdout default to os.Stdin/os.Stdout when nil.
	// Override in tests for deterministic I/O.
	Stdin  io.Reader
	Stdout io.Writer
}

func (m *ConnectMode) stdin() io.Reader {
	if m.Stdin != nil {
		return m.Stdin
	}
	return os.Stdin
}

func (m *ConnectMode) stdout() io.Writer {
	if m.Stdout != nil {
		return m.Stdout
	}
	return os.Stdout
}

// Run dials the endpoint, binds the session, and returns the outcome
// of the first capability loop to finish.  The session is closed when
// Run returns; the losing loops are simply abandoned, which is safe
// because the process owns no state needing graceful drain.
func (m *ConnectMode) Run(ctx context.Context) error {
	defer m.Dialer.Close()

	m.Logger.Verbose("connecting to %s", m.URL)

	ts, err := m.Dialer.Dial(ctx, m.URL)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", m.URL, err)
	}
	defer ts.CloseWithError(0, "") //nolint:errcheck

	m.Logger.Info("connected")

	sess := session.New(ts, m.stdin(), m.stdout(), m.Logger, m.Metrics)
	defer m.logStats()

	return m.race(ctx, sess)
}

type outcome struct {
	name string
	err  error
}

// race starts every capability as its own goroutine and waits for the
// first terminal outcome.  First-to-finish wins: no loop is restarted
// and there is no supervision.  Closing the session afterwards
// unblocks whatever transport calls the losing loops are parked on.
func (m *ConnectMode) race(ctx context.Context, sess *session.Session) error {
	results := make(chan outcome, len(m.Capabilities))

	for _, c := range m.Capabilities {
		c := c
		m.Logger.Debug("starting %s loop", c.Name())
		go func() {
			results <- outcome{name: c.Name(), err: c.Handle(ctx, sess)}
		}()
	}

	select {
	case r := <-results:
		if r.err != nil {
			return fmt.Errorf("%s: %w", r.name, r.err)
		}
		m.Logger.Verbose("%s loop finished", r.name)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// logStats emits the metrics snapshot at debug level.
func (m *ConnectMode) logStats() {
	if m.Logger.Level() < util.LogDebug {
		return
	}
	b, err := json.Marshal(m.Metrics.Snapshot())
	if err != nil {
		return
	}
	m.Logger.Debug("session stats: %s", b)
}
