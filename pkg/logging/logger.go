// Package logging provides structured logging capabilities for go-asteroids.
// It wraps zap to provide consistent logging patterns with correlation IDs,
// error context preservation, and security-conscious log formatting.
package logging

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// EnvLogLevel selects the minimum level: DEBUG, INFO, WARN or ERROR.
	EnvLogLevel = "ASTEROIDS_LOG_LEVEL"
	// EnvLogFile redirects output to a rotating file instead of stdout.
	EnvLogFile = "ASTEROIDS_LOG_FILE"
)

// Logger wraps a zap SugaredLogger to provide application-specific logging
// functionality with correlation ID support and security-conscious formatting.
type Logger struct {
	sugar *zap.SugaredLogger
}

// NewLogger creates a new Logger instance with JSON output and configurable level.
// The log level can be controlled via the ASTEROIDS_LOG_LEVEL environment variable.
// Valid levels: DEBUG, INFO, WARN, ERROR. Defaults to INFO.
// When ASTEROIDS_LOG_FILE is set, entries go to that file with size-based rotation.
func NewLogger() *Logger {
	var out io.Writer = os.Stdout
	if path := os.Getenv(EnvLogFile); path != "" {
		out = newRotatingFile(path)
	}
	return NewLoggerWithWriter(out, getLogLevelFromEnv())
}

// NewFileLogger creates a Logger that always writes to a rotating file.
// Renderers that own the terminal use it to keep stdout clean.
func NewFileLogger(path string) *Logger {
	return NewLoggerWithWriter(newRotatingFile(path), getLogLevelFromEnv())
}

// NewLoggerWithWriter creates a Logger that writes JSON entries to w.
func NewLoggerWithWriter(w io.Writer, level zapcore.Level) *Logger {
	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), level)

	// skip the wrapper frames so the caller field points at application code
	return &Logger{zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2)).Sugar()}
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}

func newRotatingFile(path string) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	}
}

// LogWithContext logs a message with automatic correlation ID extraction from context.
// If a correlation ID exists in the context, it will be included in the log entry.
func (l *Logger) LogWithContext(ctx context.Context, level zapcore.Level, msg string, args ...any) {
	args = sanitizeArgs(args)
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		args = append(args, "correlation_id", correlationID)
	}
	l.sugar.Logw(level, msg, args...)
}

// Info logs an informational message with context.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, zapcore.InfoLevel, msg, args...)
}

// Warn logs a warning message with context.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, zapcore.WarnLevel, msg, args...)
}

// Error logs an error message with context and proper error formatting.
func (l *Logger) Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.LogWithContext(ctx, zapcore.ErrorLevel, msg, args...)
}

// Debug logs a debug message with context.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, zapcore.DebugLevel, msg, args...)
}

// Enabled reports whether entries at level would be written.
func (l *Logger) Enabled(level zapcore.Level) bool {
	return l.sugar.Desugar().Core().Enabled(level)
}

// Sync flushes any buffered entries.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

// correlationIDKey is the context key for correlation IDs
type correlationIDKey struct{}

// WithCorrelationID adds a correlation ID to the context.
// If no correlation ID is provided, a new one will be generated.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	if correlationID == "" {
		correlationID = GenerateCorrelationID()
	}
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

// GetCorrelationID extracts the correlation ID from the context.
// Returns empty string if no correlation ID is present.
func GetCorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GenerateCorrelationID creates a new random correlation ID.
func GenerateCorrelationID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// getLogLevelFromEnv determines the log level from environment variables.
func getLogLevelFromEnv() zapcore.Level {
	levelStr := strings.ToUpper(os.Getenv(EnvLogLevel))
	switch levelStr {
	case "DEBUG":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// sensitiveKeys are masked wherever they appear in a key name.
var sensitiveKeys = []string{
	"password", "passwd", "pwd",
	"token", "auth", "authorization",
	"secret", "key", "private",
	"cookie", "session",
}

// sanitizeAttributes masks the value of a single key/value pair when the key
// looks sensitive.
func sanitizeAttributes(key string, value any) any {
	lower := strings.ToLower(key)
	for _, sensitive := range sensitiveKeys {
		if strings.Contains(lower, sensitive) {
			return "[REDACTED]"
		}
	}
	return value
}

// sanitizeArgs walks alternating key/value arguments and masks sensitive
// values. A trailing key without a value is left for zap to report.
func sanitizeArgs(args []any) []any {
	out := make([]any, len(args))
	copy(out, args)
	for i := 0; i+1 < len(out); i += 2 {
		if key, ok := out[i].(string); ok {
			out[i+1] = sanitizeAttributes(key, out[i+1])
		}
	}
	return out
}

// WrapError wraps an error with additional context information.
// This preserves the original error while adding descriptive context.
func WrapError(err error, context string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		context = fmt.Sprintf(context, args...)
	}
	return fmt.Errorf("%s: %w", context, err)
}
