// Package capability defines what happens over an established
// session.  Each Capability encapsulates a single indefinitely
// repeating I/O loop (receive datagrams, accept streams, forward
// stdin) and operates on a Session rather than the raw transport,
// which keeps the loops testable and decoupled from transport
// details.
//
// The loops carry deliberately asymmetric error policies:
//
//   - datagram receive failure and stream accept failure are
//     session-fatal and end the owning loop;
//   - a single stream's read failure and a single datagram's send
//     failure are logged and the owning loop continues.
//
// One bad message must never kill a receive path; a broken session
// must.
package capability

import (
	"context"

	"webtranscat/internal/session"
)

// Capability runs one I/O loop against the given session.
// Implementations include the two receive loops (DatagramReceiver,
// StreamReceiver) and the stdin forwarder (StdinForwarder).
type Capability interface {
	// Handle runs the loop.  It blocks until the loop reaches a
	// terminal outcome: nil for a normal completion (stdin EOF,
	// one-message satisfied), an error for a session-fatal failure.
	Handle(ctx context.Context, sess *session.Session) error

	// Name identifies the loop in diagnostics.
	Name() string
}
