package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu sync.Mutex

	logFile *os.File
	logPath string
	output  io.Writer

	logger   *slog.Logger
	levelVar = &slog.LevelVar{}

	internalLogger   *slog.Logger
	internalLevelVar = &slog.LevelVar{}
)

func init() {
	// Framework internals stay quiet until Init enables debug output.
	internalLevelVar.Set(slog.LevelError)
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories on first use.
func SetLogPath(path string) {
	mu.Lock()
	defer mu.Unlock()

	logPath = path
	resetLocked()
}

// SetOutput replaces the log destination. Used by hosts that already own a
// log sink and by tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	resetLocked()
	output = w
}

func resetLocked() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	output = nil
	logger = nil
	internalLogger = nil
}

func setupLocked() io.Writer {
	if output != nil {
		return output
	}

	if logPath == "" {
		output = os.Stdout
		return output
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		output = os.Stdout
		return output
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		// Can't open log file, fall back to console-only
		output = os.Stdout
		return output
	}

	logFile = f
	output = io.MultiWriter(os.Stdout, logFile)
	return output
}

func GetLogger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(setupLocked(), &slog.HandlerOptions{
			Level: levelVar,
		}))
	}
	return logger
}

func GetInternalLogger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if internalLogger == nil {
		internalLogger = slog.New(slog.NewJSONHandler(setupLocked(), &slog.HandlerOptions{
			Level: internalLevelVar,
		})).With("component", "igf")
	}
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	internalLevelVar.Set(level)
}

// ParseLevel maps a raw level name to a slog level, defaulting to info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

func CloseLogger() {
	mu.Lock()
	defer mu.Unlock()

	resetLocked()
}
