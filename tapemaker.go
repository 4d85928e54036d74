/*
Package tapemaker converts an in-memory retro-game project into a loadable
cassette-tape image for the target 8-bit home computer.

The export is a pure transform: project in, tape image out. Each call packs
the entity banks, encodes the loading screen, emits and relocates the
runtime engine, and frames everything into tape blocks behind a bootstrap
BASIC loader.
*/
package tapemaker

import "go.uber.org/zap"

// Exporter runs export pipelines. It holds no per-export state; every call
// allocates fresh packers, so an Exporter is safe to reuse.
type Exporter struct {
	logger *zap.Logger
}

// New returns an Exporter logging through the given logger. A nil logger
// disables logging.
func New(logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{
		logger: logger,
	}
}
