// Package rlog provides the renderer's process-wide structured logger.
package rlog

import "go.uber.org/zap"

// L is the package-level logger used throughout scene assembly, mesh
// loading and the render scheduler. It is replaced wholesale by Init,
// mirroring the package-level "logger.Log" singleton pattern used for
// asset loading diagnostics elsewhere in the corpus.
var L = zap.NewNop()

// Init installs a development logger (human-readable console output,
// caller line) as the package logger. cmd/pathtracer calls this once at
// startup; library code never constructs its own logger.
func Init() error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	L = logger
	return nil
}

// Sync flushes any buffered log entries. Call before process exit.
func Sync() {
	_ = L.Sync()
}
