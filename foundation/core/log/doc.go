// Package log provides structured logging for ordt.
//
// Package: log
// Title: ordt Structured Logging
// Description: Leveled, structured logging with named loggers, persistent
//              context fields, a correlation id per tool run, and JSON,
//              text, console and logfmt output. Errors from the
//              foundation/core/error package are rendered with their code,
//              severity and details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-16 v0.2.0: Dropped async and request/user context, sorted text fields
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelInfo).
//		WithFormat(log.FormatText).
//		WithName("parameters")
//
//	logger.Info("reading parameters from top.parms...", log.Field("file", "top.parms"))
//	logger.Warn("debug_mode parameter is set", log.Fields{"parameter": "debug_mode"})
//
//	timer := logger.StartTimer("load_parameters")
//	// ... load files
//	timer.Stop()
package log
