// Package transport provides abstractions for session establishment
// over a datagram-and-stream-capable secure transport.  Transports
// handle the "how" of data movement — today WebTransport over QUIC —
// independent of what happens over the session (which is the
// capability layer's job).
package transport

import (
	"context"
	"io"
)

// Session is a capability handle onto one established transport
// session.  The handle is cheap to share: the datagram send, datagram
// receive, and stream accept paths are three logically distinct
// sub-channels of the one session, each internally synchronized, so
// concurrent loops may call into them without coordinating.
//
// Datagrams are unreliable and unordered; incoming unidirectional
// streams are reliable and ordered within themselves.  No ordering
// exists between the two channels.
type Session interface {
	// ReceiveDatagram blocks until the next datagram arrives or the
	// session fails.  A failure here is session-fatal.
	ReceiveDatagram(ctx context.Context) ([]byte, error)

	// SendDatagram sends one datagram.  It does not block on
	// delivery; the transport may drop oversized or congested
	// datagrams, reported as an error.
	SendDatagram(payload []byte) error

	// AcceptUniStream blocks until the peer opens a unidirectional
	// stream or the session fails.  A failure here is session-fatal;
	// failures reading an individual accepted stream are not.
	AcceptUniStream(ctx context.Context) (ReceiveStream, error)

	// CloseWithError tears the session down.  All clones of the
	// handle observe the closure.
	CloseWithError(code uint32, reason string) error
}

// ReceiveStream is the read side of a peer-initiated unidirectional
// stream.  One stream carries exactly one logical message; it is read
// to the end before the message is emitted.
type ReceiveStream interface {
	io.Reader

	// CancelRead abandons the stream, telling the peer to stop
	// transmitting.  Used after a mid-stream read failure.
	CancelRead(code uint32)
}

// Dialer establishes outbound sessions.  Implementations hold the
// client-side trust configuration; the same Dialer can in principle
// dial more than once, though webtranscat dials exactly one session
// per run.
type Dialer interface {
	// Dial connects to the given https URL and performs the
	// WebTransport handshake.
	Dial(ctx context.Context, rawURL string) (Session, error)

	// Close releases any long-lived resources held by the dialer.
	// Stateless dialers return nil.
	Close() error
}
