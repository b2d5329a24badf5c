package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

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

// ParseLevel converts a configuration string to a LogLevel, defaulting to info.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger wraps slog.Logger with level filtering and an optional file sink.
type Logger struct {
	slogger *slog.Logger
	level   LogLevel
	file    *os.File
}

var globalLogger *Logger

// Config represents logging configuration
type Config struct {
	Level        LogLevel
	EnableFile   bool
	LogDir       string // Optional: defaults to standard user log directory
	EnableStderr bool   // Whether to log to stderr (disable for TUI mode)
}

// DefaultConfig returns sensible logging defaults
func DefaultConfig() *Config {
	return &Config{
		Level:        LevelInfo,
		EnableFile:   true,
		LogDir:       DefaultDir(),
		EnableStderr: false, // stderr would corrupt the TUI
	}
}

// DefaultDir returns the standard location for user-level logs
func DefaultDir() string {
	var logDir string

	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		logDir = filepath.Join(home, "Library", "Logs", "persona-interviews")
	case "windows":
		if appData := os.Getenv("LOCALAPPDATA"); appData != "" {
			logDir = filepath.Join(appData, "persona-interviews", "logs")
		} else {
			home, _ := os.UserHomeDir()
			logDir = filepath.Join(home, "AppData", "Local", "persona-interviews", "logs")
		}
	default:
		// XDG Base Directory Specification
		if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
			logDir = filepath.Join(xdgData, "persona-interviews", "logs")
		} else {
			home, _ := os.UserHomeDir()
			logDir = filepath.Join(home, ".local", "share", "persona-interviews", "logs")
		}
	}

	return logDir
}

// Initialize sets up the global logger with the given configuration
func Initialize(config *Config) error {
	var writers []io.Writer
	var logFile *os.File

	if config.EnableStderr {
		writers = append(writers, os.Stderr)
	}

	if config.EnableFile {
		if err := os.MkdirAll(config.LogDir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory %s: %w", config.LogDir, err)
		}

		timestamp := time.Now().Format("2006-01-02")
		logPath := filepath.Join(config.LogDir, fmt.Sprintf("persona-interviews-%s.log", timestamp))

		var err error
		logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to create log file %s: %w", logPath, err)
		}

		writers = append(writers, logFile)
	}

	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	var slogLevel slog.Level
	switch config.Level {
	case LevelDebug:
		slogLevel = slog.LevelDebug
	case LevelInfo:
		slogLevel = slog.LevelInfo
	case LevelWarn:
		slogLevel = slog.LevelWarn
	case LevelError:
		slogLevel = slog.LevelError
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					// Shorten the file path to just the filename
					source.File = filepath.Base(source.File)
				}
			}
			return a
		},
		AddSource: true,
	}

	handler := slog.NewTextHandler(io.MultiWriter(writers...), opts)

	globalLogger = &Logger{
		slogger: slog.New(handler),
		level:   config.Level,
		file:    logFile,
	}

	return nil
}

// GetLogger returns the global logger instance
func GetLogger() *Logger {
	if globalLogger == nil {
		config := DefaultConfig()
		if err := Initialize(config); err != nil {
			// Fallback to stderr-only logging
			globalLogger = &Logger{
				slogger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})),
				level:   LevelInfo,
			}
		}
	}
	return globalLogger
}

// Close closes the log file if it was opened
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	if l.level <= LevelDebug {
		l.slogger.Debug(msg, args...)
	}
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	if l.level <= LevelInfo {
		l.slogger.Info(msg, args...)
	}
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	if l.level <= LevelWarn {
		l.slogger.Warn(msg, args...)
	}
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	if l.level <= LevelError {
		l.slogger.Error(msg, args...)
	}
}

// With returns a new logger with the given attributes
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		slogger: l.slogger.With(args...),
		level:   l.level,
		file:    l.file,
	}
}

// WithComponent returns a logger with a component attribute
func (l *Logger) WithComponent(component string) *Logger {
	return l.With("component", component)
}

// Debug logs a debug message using the global logger
func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

// Info logs an info message using the global logger
func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

// Error logs an error message using the global logger
func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// WithComponent returns a logger with a component attribute using the global logger
func WithComponent(component string) *Logger {
	return GetLogger().WithComponent(component)
}

// Close closes the global logger
func Close() error {
	if globalLogger != nil {
		return globalLogger.Close()
	}
	return nil
}
