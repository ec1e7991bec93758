// Package metrics provides lightweight, lock-free counters for
// tracking runtime statistics of a webtranscat session.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks runtime metrics for one session.
// A nil Collector is safe to use — all methods become no-ops.
type Collector struct {
	datagramsReceived atomic.Int64
	datagramsSent     atomic.Int64
	streamsAccepted   atomic.Int64
	bytesIn           atomic.Int64
	bytesOut          atomic.Int64
	errorsTotal       atomic.Int64

	mu           sync.RWMutex
	startTime    time.Time
	lastError    time.Time
	lastErrorMsg string
}

// New creates a metrics collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── Receive metrics ──────────────────────────────────────────────────

// DatagramReceived records one inbound datagram of n bytes.
func (c *Collector) DatagramReceived(n int) {
	if c == nil {
		return
	}
	c.datagramsReceived.Add(1)
	c.bytesIn.Add(int64(n))
}

// StreamAccepted records one fully-drained inbound stream of n bytes.
func (c *Collector) StreamAccepted(n int) {
	if c == nil {
		return
	}
	c.streamsAccepted.Add(1)
	c.bytesIn.Add(int64(n))
}

// DatagramsReceived returns the inbound datagram count.
func (c *Collector) DatagramsReceived() int64 {
	if c == nil {
		return 0
	}
	return c.datagramsReceived.Load()
}

// StreamsAccepted returns the inbound stream count.
func (c *Collector) StreamsAccepted() int64 {
	if c == nil {
		return 0
	}
	return c.streamsAccepted.Load()
}

// ── Send metrics ─────────────────────────────────────────────────────

// DatagramSent records one outbound datagram of n bytes.
func (c *Collector) DatagramSent(n int) {
	if c == nil {
		return
	}
	c.datagramsSent.Add(1)
	c.bytesOut.Add(int64(n))
}

// DatagramsSent returns the outbound datagram count.
func (c *Collector) DatagramsSent() int64 {
	if c == nil {
		return 0
	}
	return c.datagramsSent.Load()
}

// TotalBytesIn returns total bytes received on both channels.
func (c *Collector) TotalBytesIn() int64 {
	if c == nil {
		return 0
	}
	return c.bytesIn.Load()
}

// TotalBytesOut returns total bytes sent.
func (c *Collector) TotalBytesOut() int64 {
	if c == nil {
		return 0
	}
	return c.bytesOut.Load()
}

// ── Error metrics ────────────────────────────────────────────────────

// RecordError increments the error counter and stores the message.
func (c *Collector) RecordError(msg string) {
	if c == nil {
		return
	}
	c.errorsTotal.Add(1)
	c.mu.Lock()
	c.lastError = time.Now()
	c.lastErrorMsg = msg
	c.mu.Unlock()
}

// ErrorCount returns the total number of errors recorded.
func (c *Collector) ErrorCount() int64 {
	if c == nil {
		return 0
	}
	return c.errorsTotal.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Uptime            string `json:"uptime"`
	DatagramsReceived int64  `json:"datagrams_received"`
	DatagramsSent     int64  `json:"datagrams_sent"`
	StreamsAccepted   int64  `json:"streams_accepted"`
	BytesIn           int64  `json:"bytes_in"`
	BytesOut          int64  `json:"bytes_out"`
	ErrorsTotal       int64  `json:"errors_total"`
	LastError         string `json:"last_error,omitempty"`
	LastErrorMessage  string `json:"last_error_message,omitempty"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Uptime:            time.Since(c.startTime).Truncate(time.Second).String(),
		DatagramsReceived: c.datagramsReceived.Load(),
		DatagramsSent:     c.datagramsSent.Load(),
		StreamsAccepted:   c.streamsAccepted.Load(),
		BytesIn:           c.bytesIn.Load(),
		BytesOut:          c.bytesOut.Load(),
		ErrorsTotal:       c.errorsTotal.Load(),
	}
	if !c.lastError.IsZero() {
		s.LastError = c.lastError.Format(time.RFC3339)
		s.LastErrorMessage = c.lastErrorMsg
	}
	return s
}
