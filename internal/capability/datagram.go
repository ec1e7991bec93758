package capability

import (
	"context"

	errs "webtranscat/internal/errors"
	"webtranscat/internal/session"
	"webtranscat/util"
)

// DatagramReceiver repeatedly reads one datagram from the session and
// writes it to stdout, newline-terminated.  Datagrams are unordered
// relative to each other and to the stream channel; output reflects
// arrival order only.
type DatagramReceiver struct {
	// OneMessage makes the loop complete after the first datagram.
	OneMessage bool
}

func (r *DatagramReceiver) Name() string { return "datagram-receive" }

// Handle loops until a receive fails (session-fatal) or, with
// OneMessage, until the first datagram has been written.
func (r *DatagramReceiver) Handle(ctx context.Context, sess *session.Session) error {
	for {
		data, err := sess.Transport.ReceiveDatagram(ctx)
		if err != nil {
			if util.IsClosedErr(err) {
				sess.Logger.Info("session closed: %v", err)
			} else {
				sess.Logger.Error("datagram receive: %v", err)
				sess.Metrics.RecordError(err.Error())
			}
			return errs.Wrap("recv-datagram", "", err)
		}

		sess.Logger.Info("received datagram: %d bytes", len(data))
		sess.Metrics.DatagramReceived(len(data))

		// Stdout is best-effort: a failed write must not end the run.
		util.WriteMessage(sess.Stdout, data) //nolint:errcheck
		util.FlushIfPossible(sess.Stdout)

		if r.OneMessage {
			return nil
		}
	}
}
