package nativelist

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// Logger returns the package logger.
// It uses a no-op logger by default, so lists emit nothing unless SetLogger is called.
func Logger() *zap.Logger {
	return logger.Load()
}

// SetLogger configures the package logger. A nil l restores the no-op logger.
// Safe to call while lists are in use.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}
