package config

import "time"

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags and environment variable loading.

const (
	// DefaultDialTimeout bounds session establishment (DNS, QUIC
	// handshake, WebTransport CONNECT).  Once the session is up, all
	// waits are unbounded; only the transport's own idle timeout
	// applies.
	DefaultDialTimeout = 10 * time.Second

	// DefaultWebTransportPort is the HTTP/3 port assumed when the URL
	// carries no explicit port.
	DefaultWebTransportPort = 443
)
