// Package cmd wires up the CLI flags and dispatches to the core.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"webtranscat/config"
	"webtranscat/internal/core"
	"webtranscat/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X webtranscat/cmd.version=2.0.0"
var version = "0.1.0" //nolint:gochecknoglobals

// Execute parses args and runs a webtranscat session.
func Execute(ctx context.Context, args []string) error {
	cfg := &config.Config{Timeout: config.DefaultDialTimeout}
	config.LoadFromEnv(cfg)

	fs := flag.NewFlagSet("webtranscat", flag.ContinueOnError)

	// ── behaviour ────────────────────────────────────────────────
	fs.BoolVar(&cfg.Insecure, "insecure", cfg.Insecure,
		"Skip certificate verification (insecure, testing only)")
	fs.BoolVarP(&cfg.Unidirectional, "unidirectional", "u", cfg.Unidirectional,
		"Only listen for incoming data, don't send from stdin")
	fs.BoolVarP(&cfg.OneMessage, "one-message", "1", cfg.OneMessage,
		"Exit after receiving one message")

	var timeoutSec int
	fs.IntVarP(&timeoutSec, "timeout", "w", 0, "Dial timeout in seconds (0 = no limit)")

	// ── output ───────────────────────────────────────────────────
	var verboseCount int
	fs.CountVarP(&verboseCount, "verbose", "v", "Increase verbosity (repeatable)")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet,
		"Suppress all diagnostics except startup failures")

	var dryRun, showVersion, showHelp bool
	fs.BoolVar(&dryRun, "dry-run", false, "Validate configuration and exit")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp || len(args) == 0 {
		printUsage(fs)
		return nil
	}
	if showVersion {
		fmt.Printf("webtranscat %s\n", version)
		return nil
	}

	if verboseCount > 0 {
		cfg.Verbose = verboseCount
	}
	// An explicit -w 0 disables the dial timeout, so apply the flag
	// whenever it was set rather than only for positive values.
	if fs.Changed("timeout") {
		cfg.Timeout = time.Duration(timeoutSec) * time.Second
	}

	// ── positional arguments ─────────────────────────────────────
	switch remaining := fs.Args(); len(remaining) {
	case 0:
		// URL may still come from WEBTRANSCAT_URL.
	case 1:
		cfg.URL = remaining[0]
	default:
		return fmt.Errorf("too many arguments: expected a single URL")
	}

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return err
	}
	if dryRun {
		fmt.Printf("configuration OK: %s\n", cfg.URL)
		return nil
	}

	// ── build components ─────────────────────────────────────────
	logger := util.NewLogger(logLevel(cfg))

	logger.Info("webtranscat %s starting", version)
	logger.Debug("config: url=%s insecure=%t unidirectional=%t one-message=%t timeout=%s",
		cfg.URL, cfg.Insecure, cfg.Unidirectional, cfg.OneMessage, cfg.Timeout)

	if !cfg.Unidirectional && term.IsTerminal(int(os.Stdin.Fd())) {
		logger.Info("reading lines from terminal; EOF (Ctrl-D) ends the session")
	}

	mode, err := core.Build(cfg, logger)
	if err != nil {
		return err
	}
	return mode.Run(ctx)
}

// ── helpers ──────────────────────────────────────────────────────────

// logLevel maps -q / -v counts onto logger levels.  -q wins over any
// number of -v.
func logLevel(cfg *config.Config) util.LogLevel {
	if cfg.Quiet {
		return util.LogSilent
	}
	level := util.LogLevel(cfg.Verbose)
	if level > util.LogDebug {
		level = util.LogDebug
	}
	return level
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `webtranscat – WebTransport client v%s

Bridges stdin/stdout to one WebTransport session: lines from stdin go
out as datagrams; received datagrams and unidirectional streams are
printed one message per line.

Usage:
  webtranscat [options] <url>

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  webtranscat https://echo.example.com:4433/session      Connect
  webtranscat -u -1 https://feed.example.com/events      Receive one message
  echo "ping" | webtranscat https://echo.example.com     Pipe a datagram
  webtranscat --insecure https://localhost:4433          Local testing
`)
}
