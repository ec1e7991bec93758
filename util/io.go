package util

import (
	"bytes"
	"errors"
	"io"
	"net"
)

// lineCutset is what TrimLine strips from the end of a stdin line:
// the line terminator plus any trailing ASCII whitespace.
const lineCutset = " \t\r\n"

// TrimLine strips the trailing line terminator and trailing whitespace
// from a line read off local input.  The rest of the line is passed
// through untouched, binary content included.
func TrimLine(line []byte) []byte {
	return bytes.TrimRight(line, lineCutset)
}

// WriteMessage writes one received message to w: the raw payload
// followed by exactly one newline.  Payloads containing embedded
// newlines are not escaped, so such a message visually fragments into
// multiple output lines; this mirrors netcat-style tools and is kept
// as observed behaviour.
//
// Write failures are returned but callers treat stdout as best-effort.
func WriteMessage(w io.Writer, payload []byte) error {
	if _, err := w.Write(payload); err != nil {
		return err
	}
	_, err := w.Write([]byte{'\n'})
	return err
}

// Flusher is implemented by writers that buffer output between writes.
// Output sinks that implement it are flushed after every message so
// interactive use never sees stale output.
type Flusher interface {
	Flush() error
}

// FlushIfPossible flushes w when it supports flushing.  os.Stdout does
// not buffer, but tests and wrapped writers may.
func FlushIfPossible(w io.Writer) {
	if f, ok := w.(Flusher); ok {
		f.Flush() //nolint:errcheck
	}
}

// IsClosedErr reports whether err looks like the session or connection
// going away, as opposed to a per-message failure.
func IsClosedErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) || errors.Is(err, io.ErrClosedPipe) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, net.ErrClosed)
	}
	return false
}
