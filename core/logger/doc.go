// Package logger provides a structured logging facility based on Zap.
//
// New builds a development logger for the debug level and a production one
// otherwise, encoded as json or console.
//
// Loggers are passed explicitly to the components that need them; the blob
// service never reads a process-wide logger.
//
// # Context Awareness
//
// WithRayID attaches the request's RayID, set by the rayid middleware, so
// every line logged for a request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
