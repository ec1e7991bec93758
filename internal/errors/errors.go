// Package errors provides domain-specific error types for webtranscat.
//
// These types carry structured context (operation, target, channel)
// that helps callers decide how to handle failures and provides better
// diagnostics than plain string wrapping.
package errors

import (
	"errors"
	"fmt"
	"net"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	// ErrSessionClosed marks receive failures caused by the session
	// going away.  It wraps net.ErrClosed so closed-connection
	// classification treats it as a clean shutdown.
	ErrSessionClosed = fmt.Errorf("session is closed: %w", net.ErrClosed)
)

// ── Structured error types ───────────────────────────────────────────

// SessionError represents a failure on the WebTransport session.
type SessionError struct {
	Op     string // operation: "dial", "recv-datagram", "send-datagram", "accept-stream", "read-stream"
	Target string // session URL or stream identifier
	Err    error  // underlying error
}

func (e *SessionError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
}

func (e *SessionError) Unwrap() error { return e.Err }

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string      // flag name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: --%s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

// ── Constructors ─────────────────────────────────────────────────────

// Wrap creates a SessionError for the given operation and target.
func Wrap(op, target string, err error) *SessionError {
	return &SessionError{Op: op, Target: target, Err: err}
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These allow callers to use webtranscat/internal/errors as a drop-in
// replacement for the standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
