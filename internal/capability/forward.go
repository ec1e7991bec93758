package capability

import (
	"bufio"
	"context"
	"io"

	errs "webtranscat/internal/errors"
	"webtranscat/internal/session"
	"webtranscat/util"
)

// StdinForwarder repeatedly reads one line from local input and sends
// the trimmed bytes as exactly one outbound datagram.  It is not
// built at all in unidirectional mode.
type StdinForwarder struct{}

func (f *StdinForwarder) Name() string { return "stdin-forward" }

// Handle loops until end-of-input (normal completion) or a local read
// error.  A failed send is a per-message error: logged, then the loop
// keeps forwarding subsequent lines.
func (f *StdinForwarder) Handle(ctx context.Context, sess *session.Session) error {
	reader := bufio.NewReader(sess.Stdin)

	for {
		line, err := reader.ReadBytes('\n')

		// A final line without a terminator still gets sent.
		if len(line) > 0 {
			f.send(sess, util.TrimLine(line))
		}

		if err != nil {
			if errs.Is(err, io.EOF) {
				sess.Logger.Info("EOF on stdin")
				return nil
			}
			sess.Logger.Error("stdin read: %v", err)
			return errs.Wrap("read-stdin", "", err)
		}
	}
}

func (f *StdinForwarder) send(sess *session.Session, data []byte) {
	sess.Logger.Info("sending %d bytes as datagram", len(data))

	if err := sess.Transport.SendDatagram(data); err != nil {
		sess.Logger.Error("send datagram: %v", err)
		sess.Metrics.RecordError(err.Error())
		return
	}

	sess.Metrics.DatagramSent(len(data))
	sess.Logger.Debug("datagram sent")
}
