package log

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// Logger returns the logger shared by memo caches and lambda compilers.
// It is a no-op logger until SetLogger is called.
func Logger() *zap.Logger {
	return logger.Load()
}

// SetLogger replaces the shared logger and returns a function restoring the previous one.
// A nil logger installs a no-op logger.
func SetLogger(l *zap.Logger) (restore func()) {
	if l == nil {
		l = zap.NewNop()
	}
	prev := logger.Swap(l)
	return func() {
		logger.Store(prev)
	}
}

// WithTestLogger installs a debug-level console logger on stdout.
func WithTestLogger() (restore func()) {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return SetLogger(zap.New(consoleCore))
}
