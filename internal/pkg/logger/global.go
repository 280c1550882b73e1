package logger

import (
	"context"
	"sync/atomic"

	"github.com/piresc/ridermap/internal/pkg/requestcontext"
	"go.uber.org/zap"
)

var (
	globalLogger atomic.Pointer[ZapLogger]
	nopLogger    = NewFromZap(zap.NewNop())
)

// SetGlobalLogger sets the logger used by the package-level helpers.
// Call once during startup.
func SetGlobalLogger(logger *ZapLogger) {
	globalLogger.Store(logger)
}

// GetGlobalLogger returns the global logger, or a no-op logger before SetGlobalLogger
func GetGlobalLogger() *ZapLogger {
	if current := globalLogger.Load(); current != nil {
		return current
	}
	return nopLogger
}

// FromContext returns the global logger tagged with the request ID in ctx
func FromContext(ctx context.Context) *ZapLogger {
	base := GetGlobalLogger()
	requestID := requestcontext.GetRequestID(ctx)
	if requestID == "" {
		return base
	}
	return NewFromZap(base.Logger.With(RequestID(requestID)))
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}
