package capability

import (
	"context"
	"io"

	errs "webtranscat/internal/errors"
	"webtranscat/internal/session"
	"webtranscat/util"
)

// streamCancelCode is sent to the peer when a stream read fails
// mid-message and the remainder is abandoned.
const streamCancelCode = 0

// StreamReceiver repeatedly accepts one incoming unidirectional
// stream, drains it fully, and writes the whole message to stdout,
// newline-terminated.  Streams are drained serially, one at a time;
// one stream carries exactly one logical message.
type StreamReceiver struct {
	// OneMessage makes the loop complete after the first fully-read
	// stream.
	OneMessage bool
}

func (r *StreamReceiver) Name() string { return "stream-receive" }

// Handle loops until an accept fails (session-fatal) or, with
// OneMessage, until one stream has been fully drained and written.
//
// A mid-stream read failure is a per-message error: it is logged, the
// stream is cancelled, and the loop goes back to accepting.  Nothing
// of a partially-read stream is ever emitted.
func (r *StreamReceiver) Handle(ctx context.Context, sess *session.Session) error {
	for {
		stream, err := sess.Transport.AcceptUniStream(ctx)
		if err != nil {
			if util.IsClosedErr(err) {
				sess.Logger.Info("session closed: %v", err)
			} else {
				sess.Logger.Error("stream accept: %v", err)
				sess.Metrics.RecordError(err.Error())
			}
			return errs.Wrap("accept-stream", "", err)
		}

		sess.Logger.Info("accepted unidirectional stream")

		data, err := io.ReadAll(stream)
		if err != nil {
			sess.Logger.Error("stream read: %v", err)
			sess.Metrics.RecordError(err.Error())
			stream.CancelRead(streamCancelCode)
			continue
		}

		sess.Logger.Info("read %d bytes from stream", len(data))
		sess.Metrics.StreamAccepted(len(data))

		util.WriteMessage(sess.Stdout, data) //nolint:errcheck
		util.FlushIfPossible(sess.Stdout)

		if r.OneMessage {
			return nil
		}
	}
}
