// Package core is the orchestration layer.  It composes the transport
// and the capability loops into a complete operational mode and
// provides a builder that assembles the right mode from a Config.
//
// Architecture layers (bottom → top):
//
//	transport  →  capability  →  session  →  core  →  cmd (CLI)
package core

import "context"

// Mode represents a complete operational mode of webtranscat.  Each
// mode owns its full lifecycle from session establishment to
// teardown.  Today there is a single mode, Connect; the indirection
// keeps cmd free of construction details.
type Mode interface {
	Run(ctx context.Context) error
}
