// Package igf provides a framework for building clickable inventory screens
// on top of a game server's inventory and event model.
//
// A Screen owns a fixed grid of slots and renders it from a Layout:
// Static for a fixed set of buttons, Paginated for lists spread over pages,
// and States for screens that switch between button sets. Host-specific
// work (allocating inventories, building items, storing item data) is done
// by collaborators described in host.go. Events are dispatched to screens by
// the router package.
package igf

import (
	"io"
	"log/slog"
	"os"

	"github.com/SwiftStorm-Studio/igf/pkg/igf/constants"
	"github.com/SwiftStorm-Studio/igf/pkg/igf/internal"
)

// Options configures framework-wide logging.
type Options struct {
	LogPath  string    // Full path for log file including filename (creates parent directories)
	LogLevel string    // Application log level ("debug", "info", "warn", "error")
	Output   io.Writer // Replaces stdout/file output when set
	Debug    bool      // Log framework internals at debug level
}

// Init configures logging. It may be called again to reconfigure.
// The IGF_DEBUG and IGF_LOG_LEVEL environment variables override Options.
func Init(options Options) {
	if options.Output != nil {
		internal.SetOutput(options.Output)
	} else if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if options.Debug || constants.IsDebug() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	level := options.LogLevel
	if env := os.Getenv(constants.LogLevelEnvVar); env != "" {
		level = env
	}
	internal.SetRawLogLevel(level)
}

// Close releases the log file, if any.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
