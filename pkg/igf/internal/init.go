// Package internal contains the shared infrastructure for the igf framework,
// currently the process-wide loggers.
// Types and functions in this package are not part of the public API.
package internal
