// File: dispatch/logging.go
package dispatch

import "go.uber.org/zap"

// newNopLogger is the fallback used when a caller does not supply a
// logger, so the dispatcher never has to nil-check before logging.
func newNopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
