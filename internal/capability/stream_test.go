package capability

import (
	"context"
	"strings"
	"testing"

	errs "webtranscat/internal/errors"
)

func TestStreamReceiver_DrainsBeforeEmitting(t *testing.T) {
	// Two writes then close on the remote side arrive as one message.
	ft := newFakeTransport()
	ft.streams <- acceptResult{stream: &fakeStream{
		r: &chunkReader{chunks: [][]byte{[]byte("ab"), []byte("cd")}},
	}}
	close(ft.streams)

	sess, out := newTestSession(ft, nil)
	r := &StreamReceiver{}

	err := r.Handle(context.Background(), sess)
	if !errs.Is(err, errs.ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed after channel drained, got %v", err)
	}
	if got, want := out.String(), "abcd\n"; got != want {
		t.Errorf("output = %q, want %q (one combined message)", got, want)
	}
}

func TestStreamReceiver_ReadErrorDoesNotKillLoop(t *testing.T) {
	bad := &fakeStream{r: &chunkReader{
		chunks: [][]byte{[]byte("partial")},
		err:    errs.New("stream reset"),
	}}
	good := &fakeStream{r: &chunkReader{chunks: [][]byte{[]byte("ok")}}}

	ft := newFakeTransport()
	ft.streams <- acceptResult{stream: bad}
	ft.streams <- acceptResult{stream: good}
	close(ft.streams)

	sess, out := newTestSession(ft, nil)
	r := &StreamReceiver{}

	err := r.Handle(context.Background(), sess)
	if !errs.Is(err, errs.ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}

	// The failed stream contributes nothing, not even its partial bytes.
	if got, want := out.String(), "ok\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if !bad.wasCancelled() {
		t.Error("failed stream should be cancelled")
	}
	if good.wasCancelled() {
		t.Error("healthy stream should not be cancelled")
	}
}

func TestStreamReceiver_AcceptErrorIsFatal(t *testing.T) {
	ft := newFakeTransport()
	ft.streams <- acceptResult{err: errs.New("session gone")}

	sess, out := newTestSession(ft, nil)
	r := &StreamReceiver{}

	err := r.Handle(context.Background(), sess)
	if err == nil {
		t.Fatal("expected error")
	}
	var se *errs.SessionError
	if !errs.As(err, &se) {
		t.Fatalf("expected *SessionError, got %T", err)
	}
	if se.Op != "accept-stream" {
		t.Errorf("op = %q, want accept-stream", se.Op)
	}
	if out.Len() != 0 {
		t.Errorf("no output expected, got %q", out.String())
	}
}

func TestStreamReceiver_CleanClosureLoggedQuietly(t *testing.T) {
	ft := newFakeTransport()
	close(ft.streams)

	sess, logBuf := newLoggedSession(ft)

	err := (&StreamReceiver{}).Handle(context.Background(), sess)
	if !errs.Is(err, errs.ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
	if !strings.Contains(logBuf.String(), "[INF] session closed") {
		t.Errorf("closure should be logged at info, got %q", logBuf.String())
	}
	if strings.Contains(logBuf.String(), "[ERR]") {
		t.Errorf("closure must not be logged as an error, got %q", logBuf.String())
	}
}

func TestStreamReceiver_OneMessageCompletes(t *testing.T) {
	ft := newFakeTransport()
	ft.streams <- acceptResult{stream: &fakeStream{
		r: &chunkReader{chunks: [][]byte{[]byte("first")}},
	}}
	ft.streams <- acceptResult{stream: &fakeStream{
		r: &chunkReader{chunks: [][]byte{[]byte("second")}},
	}}

	sess, out := newTestSession(ft, nil)
	r := &StreamReceiver{OneMessage: true}

	if err := r.Handle(context.Background(), sess); err != nil {
		t.Fatalf("expected clean completion, got %v", err)
	}
	if got, want := out.String(), "first\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestStreamReceiver_OneMessageNotSatisfiedByFailedStream(t *testing.T) {
	// A stream that fails mid-read is not "one message": the loop keeps
	// accepting until a stream is fully drained.
	bad := &fakeStream{r: &chunkReader{err: errs.New("reset")}}
	good := &fakeStream{r: &chunkReader{chunks: [][]byte{[]byte("msg")}}}

	ft := newFakeTransport()
	ft.streams <- acceptResult{stream: bad}
	ft.streams <- acceptResult{stream: good}

	sess, out := newTestSession(ft, nil)
	r := &StreamReceiver{OneMessage: true}

	if err := r.Handle(context.Background(), sess); err != nil {
		t.Fatalf("expected clean completion, got %v", err)
	}
	if got, want := out.String(), "msg\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestStreamReceiver_EmptyStreamIsOneEmptyMessage(t *testing.T) {
	ft := newFakeTransport()
	ft.streams <- acceptResult{stream: &fakeStream{r: &chunkReader{}}}

	sess, out := newTestSession(ft, nil)
	r := &StreamReceiver{OneMessage: true}

	if err := r.Handle(context.Background(), sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := out.String(), "\n"; got != want {
		t.Errorf("output = %q, want bare newline", got)
	}
}
