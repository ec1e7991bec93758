package core

import (
	"webtranscat/config"
	"webtranscat/internal/capability"
	"webtranscat/internal/metrics"
	"webtranscat/internal/transport"
	"webtranscat/util"
)

// Build constructs the Connect mode from the given configuration.
// This is the single dispatch point between the CLI and the runtime.
func Build(cfg *config.Config, logger *util.Logger) (Mode, error) {
	u, err := config.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	return &ConnectMode{
		Dialer: &transport.WebTransportDialer{
			Insecure: cfg.Insecure,
			Timeout:  cfg.Timeout,
			Logger:   logger,
		},
		Capabilities: buildCapabilities(cfg),
		URL:          u.String(),
		Logger:       logger,
		Metrics:      metrics.New(),
	}, nil
}

// buildCapabilities selects the loop set: both receive loops always,
// the stdin forwarder only outside unidirectional mode.
func buildCapabilities(cfg *config.Config) []capability.Capability {
	caps := []capability.Capability{
		&capability.DatagramReceiver{OneMessage: cfg.OneMessage},
		&capability.StreamReceiver{OneMessage: cfg.OneMessage},
	}
	if !cfg.Unidirectional {
		caps = append(caps, &capability.StdinForwarder{})
	}
	return caps
}
