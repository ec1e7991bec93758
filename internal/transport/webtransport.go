package transport

import (
	"context"
	"crypto/tls"
	"net/http"
	"time"

	"github.com/quic-go/quic-go"
	"github.com/quic-go/webtransport-go"

	errs "webtranscat/internal/errors"
	"webtranscat/util"
)

// WebTransportDialer dials a WebTransport session over QUIC.  The
// zero value dials with system trust roots and no handshake timeout.
type WebTransportDialer struct {
	// Insecure disables certificate verification.  For testing only;
	// a warning is logged on every dial.
	Insecure bool

	// Timeout bounds session establishment.  Zero means no limit.
	Timeout time.Duration

	Logger *util.Logger

	dialer *webtransport.Dialer
}

// Dial connects to the given https URL and performs the WebTransport
// handshake.  Datagram support is negotiated unconditionally; servers
// that reject datagrams surface the failure on first use.
func (d *WebTransportDialer) Dial(ctx context.Context, rawURL string) (Session, error) {
	d.dialer = &webtransport.Dialer{
		TLSClientConfig: d.tlsConfig(),
		QUICConfig: &quic.Config{
			EnableDatagrams: true,
		},
	}

	if d.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}

	rsp, sess, err := d.dialer.Dial(ctx, rawURL, http.Header{})
	if err != nil {
		return nil, errs.Wrap("dial", rawURL, err)
	}
	d.Logger.Debug("CONNECT response: %s", rsp.Status)

	return &wtSession{sess: sess}, nil
}

// Close releases the dialer's HTTP/3 transport resources.
func (d *WebTransportDialer) Close() error {
	if d.dialer == nil {
		return nil
	}
	return d.dialer.Close()
}

// tlsConfig builds the client trust configuration: system roots by
// default, no verification at all with Insecure.
func (d *WebTransportDialer) tlsConfig() *tls.Config {
	conf := &tls.Config{
		MinVersion: tls.VersionTLS13, // QUIC mandates 1.3
	}
	if d.Insecure {
		d.Logger.Warn("certificate verification disabled (--insecure)")
		conf.InsecureSkipVerify = true
	}
	return conf
}

// ── webtransport-go adapters ─────────────────────────────────────────

// wtSession adapts *webtransport.Session to the Session interface.
// webtransport-go already synchronizes the datagram and stream paths
// internally, so the adapter adds no locking.
type wtSession struct {
	sess *webtransport.Session
}

func (s *wtSession) ReceiveDatagram(ctx context.Context) ([]byte, error) {
	return s.sess.ReceiveDatagram(ctx)
}

func (s *wtSession) SendDatagram(payload []byte) error {
	return s.sess.SendDatagram(payload)
}

func (s *wtSession) AcceptUniStream(ctx context.Context) (ReceiveStream, error) {
	st, err := s.sess.AcceptUniStream(ctx)
	if err != nil {
		return nil, err
	}
	return &wtStream{stream: st}, nil
}

func (s *wtSession) CloseWithError(code uint32, reason string) error {
	return s.sess.CloseWithError(webtransport.SessionErrorCode(code), reason)
}

// wtStream adapts webtransport.ReceiveStream.
type wtStream struct {
	stream webtransport.ReceiveStream
}

func (s *wtStream) Read(p []byte) (int, error) {
	return s.stream.Read(p)
}

func (s *wtStream) CancelRead(code uint32) {
	s.stream.CancelRead(webtransport.StreamErrorCode(code))
}
