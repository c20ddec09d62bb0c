// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for the CLI and the HTTP trigger server.
// Sync runs log one line per reconciled record with typed fields (content type,
// identity key, entry id, action) so a failed run can be reproduced from its log.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches it to the
// log entry, so that all logs related to a triggered run can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Sync started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Sync failed", zap.Error(err))
package logger
