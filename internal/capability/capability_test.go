package capability

// Shared test doubles: an in-memory transport session fed by channels,
// so loop behaviour can be driven deterministically without a network.

import (
	"bytes"
	"context"
	"io"
	"sync"

	errs "webtranscat/internal/errors"
	"webtranscat/internal/session"
	"webtranscat/internal/transport"
	"webtranscat/util"
)

type datagramResult struct {
	data []byte
	err  error
}

type acceptResult struct {
	stream transport.ReceiveStream
	err    error
}

// fakeTransport implements transport.Session.  Closing a channel makes
// the corresponding receive path report ErrSessionClosed, mimicking
// session teardown.
type fakeTransport struct {
	datagrams chan datagramResult
	streams   chan acceptResult

	mu       sync.Mutex
	sent     [][]byte
	sendErrs []error // popped per send; nil entry = success
	closed   bool
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		datagrams: make(chan datagramResult, 16),
		streams:   make(chan acceptResult, 16),
	}
}

func (f *fakeTransport) ReceiveDatagram(ctx context.Context) ([]byte, error) {
	select {
	case r, ok := <-f.datagrams:
		if !ok {
			return nil, errs.ErrSessionClosed
		}
		return r.data, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (f *fakeTransport) SendDatagram(payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sendErrs) > 0 {
		err := f.sendErrs[0]
		f.sendErrs = f.sendErrs[1:]
		if err != nil {
			return err
		}
	}
	f.sent = append(f.sent, append([]byte(nil), payload...))
	return nil
}

func (f *fakeTransport) AcceptUniStream(ctx context.Context) (transport.ReceiveStream, error) {
	select {
	case r, ok := <-f.streams:
		if !ok {
			return nil, errs.ErrSessionClosed
		}
		return r.stream, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (f *fakeTransport) CloseWithError(code uint32, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeTransport) sentDatagrams() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]byte(nil), f.sent...)
}

// fakeStream is a ReceiveStream over an arbitrary reader.
type fakeStream struct {
	r io.Reader

	mu        sync.Mutex
	cancelled bool
}

func (s *fakeStream) Read(p []byte) (int, error) { return s.r.Read(p) }

func (s *fakeStream) CancelRead(code uint32) {
	s.mu.Lock()
	s.cancelled = true
	s.mu.Unlock()
}

func (s *fakeStream) wasCancelled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelled
}

// chunkReader yields the given chunks one Read at a time, then the
// final error (io.EOF for a clean close).
type chunkReader struct {
	chunks [][]byte
	err    error
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		return 0, io.EOF
	}
	n := copy(p, r.chunks[0])
	r.chunks = r.chunks[1:]
	return n, nil
}

// newTestSession binds a fake transport to buffer-backed stdio with a
// silent logger.
func newTestSession(t *fakeTransport, stdin io.Reader) (*session.Session, *bytes.Buffer) {
	var out bytes.Buffer
	if stdin == nil {
		stdin = bytes.NewReader(nil)
	}
	return session.New(t, stdin, &out, util.NewLogger(util.LogSilent), nil), &out
}

// newLoggedSession is newTestSession with diagnostics captured, for
// tests asserting how a loop reports a condition.
func newLoggedSession(t *fakeTransport) (*session.Session, *bytes.Buffer) {
	var logBuf bytes.Buffer
	logger := util.NewLogger(util.LogNormal)
	logger.SetOutput(&logBuf)
	logger.SetTimestamps(false)
	sess := session.New(t, bytes.NewReader(nil), &bytes.Buffer{}, logger, nil)
	return sess, &logBuf
}
