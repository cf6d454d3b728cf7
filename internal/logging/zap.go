package logging

import (
	"go.uber.org/zap"

	"github.com/changedi/impala/types"
)

// ZapLogger implements types.Logger on top of a zap.SugaredLogger.
type ZapLogger struct {
	logger *zap.SugaredLogger
}

// Compile-time assertion that ZapLogger implements Logger.
var _ types.Logger = (*ZapLogger)(nil)

// NewZap creates a new zap-based logger.
//
// Parameters:
//   - logger: The underlying sugared logger to use
//
// Returns:
//   - *ZapLogger: A new logger instance that wraps the provided logger
func NewZap(logger *zap.SugaredLogger) *ZapLogger {
	return &ZapLogger{logger: logger}
}

// Debug logs a message at DebugLevel.
func (l *ZapLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debugw(msg, keysAndValues...)
}

// Info logs a message at InfoLevel.
func (l *ZapLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Infow(msg, keysAndValues...)
}

// Warn logs a message at WarnLevel.
func (l *ZapLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warnw(msg, keysAndValues...)
}

// Error logs a message at ErrorLevel.
func (l *ZapLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Errorw(msg, keysAndValues...)
}
