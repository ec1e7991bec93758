package core

import (
	"testing"

	"webtranscat/config"
	"webtranscat/internal/capability"
	"webtranscat/util"
)

func testLogger() *util.Logger { return util.NewLogger(util.LogSilent) }

func TestBuild_BidirectionalHasThreeLoops(t *testing.T) {
	cfg := &config.Config{URL: "https://example.com:4433/echo"}

	mode, err := Build(cfg, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cm, ok := mode.(*ConnectMode)
	if !ok {
		t.Fatalf("expected *ConnectMode, got %T", mode)
	}
	if len(cm.Capabilities) != 3 {
		t.Fatalf("expected 3 capabilities, got %d", len(cm.Capabilities))
	}
	names := map[string]bool{}
	for _, c := range cm.Capabilities {
		names[c.Name()] = true
	}
	for _, want := range []string{"datagram-receive", "stream-receive", "stdin-forward"} {
		if !names[want] {
			t.Errorf("missing %s capability", want)
		}
	}
}

func TestBuild_UnidirectionalSkipsForwarder(t *testing.T) {
	cfg := &config.Config{
		URL:            "https://example.com",
		Unidirectional: true,
	}

	mode, err := Build(cfg, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cm := mode.(*ConnectMode)
	if len(cm.Capabilities) != 2 {
		t.Fatalf("expected 2 capabilities, got %d", len(cm.Capabilities))
	}
	for _, c := range cm.Capabilities {
		if c.Name() == "stdin-forward" {
			t.Error("stdin forwarder must not be built in unidirectional mode")
		}
	}
}

func TestBuild_OneMessagePropagates(t *testing.T) {
	cfg := &config.Config{URL: "https://example.com", OneMessage: true}

	mode, err := Build(cfg, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, c := range mode.(*ConnectMode).Capabilities {
		switch v := c.(type) {
		case *capability.DatagramReceiver:
			if !v.OneMessage {
				t.Error("datagram receiver should carry one-message flag")
			}
		case *capability.StreamReceiver:
			if !v.OneMessage {
				t.Error("stream receiver should carry one-message flag")
			}
		}
	}
}

func TestBuild_NormalizesURLPort(t *testing.T) {
	mode, err := Build(&config.Config{URL: "https://example.com/echo"}, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := mode.(*ConnectMode).URL, "https://example.com:443/echo"; got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}
}

func TestBuild_RejectsBadURL(t *testing.T) {
	for _, raw := range []string{"http://example.com", "wss://example.com", "https://", "://nope"} {
		if _, err := Build(&config.Config{URL: raw}, testLogger()); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}
