// Package logger wraps zap behind the same kind of closed, named-field
// context helpers internal/apperr and internal/gamelock use elsewhere
// in this codebase: callers ask for "the game logger" or "the
// connection logger" rather than building zap.Field slices by hand at
// every call site.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *zap.Logger

// Init builds the global logger: zap.NewProductionConfig in
// GO_ENV=production (JSON, sampled), zap.NewDevelopmentConfig
// otherwise (console, unsampled), with its level taken from
// logLevel (defaulting to info on a nil pointer or an unrecognized
// string).
func Init(logLevel *string) error {
	config := zap.NewDevelopmentConfig()
	if os.Getenv("GO_ENV") == "production" {
		config = zap.NewProductionConfig()
	}

	level := zapcore.InfoLevel
	if logLevel != nil {
		var parsed zapcore.Level
		if err := parsed.UnmarshalText([]byte(*logLevel)); err == nil {
			level = parsed
		}
	}
	config.Level = zap.NewAtomicLevelAt(level)

	built, err := config.Build()
	if err != nil {
		return err
	}
	globalLogger = built
	return nil
}

// Get returns the global logger, falling back to an unconfigured
// development logger if Init was never called (e.g. in a test).
func Get() *zap.Logger {
	if globalLogger == nil {
		globalLogger, _ = zap.NewDevelopment()
	}
	return globalLogger
}

// Sync flushes any buffered log entries.
func Sync() error {
	if globalLogger == nil {
		return nil
	}
	return globalLogger.Sync()
}

// Shutdown flushes the logger at process exit.
func Shutdown() error {
	return Sync()
}

// namedFields builds a zap.Field slice from name/value pairs, skipping
// any value left at its zero string so callers can pass an ID they
// don't have without polluting every log line with empty fields.
func namedFields(pairs ...[2]string) []zap.Field {
	fields := make([]zap.Field, 0, len(pairs))
	for _, pair := range pairs {
		if pair[1] != "" {
			fields = append(fields, zap.String(pair[0], pair[1]))
		}
	}
	return fields
}

// WithContext returns a logger carrying arbitrary caller-built fields.
func WithContext(fields ...zap.Field) *zap.Logger {
	return Get().With(fields...)
}

// WithGameContext returns a logger tagged with a game and, if known,
// the player acting within it — used by the turn engine.
func WithGameContext(gameID, playerID string) *zap.Logger {
	return Get().With(namedFields([2]string{"game_id", gameID}, [2]string{"player_id", playerID})...)
}

// WithClientContext returns a logger tagged with a WebSocket
// connection and, if known, the player and game it's subscribed to —
// used by the broadcast bridge.
func WithClientContext(connectionID, playerID, gameID string) *zap.Logger {
	return Get().With(namedFields(
		[2]string{"connection_id", connectionID},
		[2]string{"player_id", playerID},
		[2]string{"game_id", gameID},
	)...)
}

// Info logs at info level on the global logger.
func Info(msg string, fields ...zap.Field) { Get().Info(msg, fields...) }

// Error logs at error level on the global logger.
func Error(msg string, fields ...zap.Field) { Get().Error(msg, fields...) }

// Warn logs at warn level on the global logger.
func Warn(msg string, fields ...zap.Field) { Get().Warn(msg, fields...) }

// Debug logs at debug level on the global logger.
func Debug(msg string, fields ...zap.Field) { Get().Debug(msg, fields...) }
