// Package constants defines shared constants and configuration values
// used throughout the igf framework.
package constants

import "os"

// DebugEnvVar enables debug logging for the framework's internal logger when set.
const DebugEnvVar = "IGF_DEBUG"

// LogLevelEnvVar overrides the application log level ("debug", "info", "warn", "error").
const LogLevelEnvVar = "IGF_LOG_LEVEL"

// IsDebug returns true if IGF_DEBUG is set to any non-empty value.
func IsDebug() bool {
	return os.Getenv(DebugEnvVar) != ""
}

// Grid geometry. Chest-style inventories are rows of nine slots,
// from a single row up to a double chest.
const (
	RowSize = 9
	MinRows = 1
	MaxRows = 6
)

// Capacity returns the number of slots in a grid with the given number of rows.
func Capacity(rows int) int {
	return rows * RowSize
}

// DefaultItemsPerPage is the page size of a paginated layout until changed.
const DefaultItemsPerPage = 9

// DefaultLocale is the fallback language for built-in labels.
const DefaultLocale = "en"

// Key rules follow the server's namespaced key format.
const (
	KeySeparator       = ":"
	KeyPartSeparator   = "."
	NamespacePattern   = `^[a-z0-9._-]+$`
	KeyNamePattern     = `^[a-z0-9/._-]+$`
	MaxNamespaceLength = 255
)
