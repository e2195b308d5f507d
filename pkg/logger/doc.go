// Package logger provides a structured logging interface for the annotation tool.
//
// It wraps zerolog with a small API:
//   - Levels: Debug, Info, Warn, Error
//   - Structured fields via WithField/WithFields and the *WithFields methods
//   - Coloured console output on stderr, or plain JSON lines to a file
//   - A global logger reachable through package functions
//
// Basic usage:
//
//	logger.Initialize(&cfg.Logging)
//	logger.WithField("ledger", cfg.Ledger.Path).Info("Annotation session started")
//
// Tests can install a TestLogger with SetLogger and inspect what was logged.
package logger
