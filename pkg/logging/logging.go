package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// LogLevel defines the severity of the log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// LevelEnvVar selects the minimum level written to stderr.
const LevelEnvVar = "TUSHARE_LOG_LEVEL"

// String makes LogLevel satisfy the fmt.Stringer interface.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// ParseLevel converts a level name (case-insensitive) into a LogLevel.
// Unknown or empty names yield LevelWarn and ok=false.
func ParseLevel(s string) (LogLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelWarn, false
	}
}

var defaultLogger *slog.Logger

// InitForCLI initializes the logging system writing text records to output.
// This should be called once at application startup.
func InitForCLI(filterLevel LogLevel, output io.Writer) {
	opts := &slog.HandlerOptions{
		Level: filterLevel.SlogLevel(),
	}
	defaultLogger = slog.New(slog.NewTextHandler(output, opts))
	slog.SetDefault(defaultLogger)
}

// InitFromEnv initializes CLI logging on output using the level named by
// TUSHARE_LOG_LEVEL. An unset or invalid value keeps the default WARN level.
func InitFromEnv(output io.Writer) LogLevel {
	level, ok := ParseLevel(os.Getenv(LevelEnvVar))
	InitForCLI(level, output)
	if !ok && os.Getenv(LevelEnvVar) != "" {
		Warn("Logging", "ignoring invalid %s=%q", LevelEnvVar, os.Getenv(LevelEnvVar))
	}
	return level
}

func logInternal(level LogLevel, subsystem string, messageFmt string, args ...interface{}) {
	if defaultLogger == nil || !defaultLogger.Enabled(context.Background(), level.SlogLevel()) {
		return
	}

	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}

	defaultLogger.LogAttrs(context.Background(), level.SlogLevel(), msg, slog.String("subsystem", subsystem))
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelDebug, subsystem, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelInfo, subsystem, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelWarn, subsystem, messageFmt, args...)
}

// Since formats the elapsed time since start for log lines.
func Since(start time.Time) string {
	return time.Since(start).Round(time.Millisecond).String()
}
