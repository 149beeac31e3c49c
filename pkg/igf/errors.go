package igf

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration problems. They are always returned
// wrapped in a *ConfigurationError.
var (
	// ErrNotInitialized indicates a key was requested before the router was
	// initialised with a namespace.
	ErrNotInitialized = errors.New("router has not been initialized")

	// ErrAlreadyInitialized indicates a second Init on the same router.
	ErrAlreadyInitialized = errors.New("router is already initialized")

	// ErrInvalidKey indicates a namespace or key name with illegal characters.
	ErrInvalidKey = errors.New("invalid namespaced key")

	// ErrNoState indicates a state layout with button mappings but no
	// current or default state.
	ErrNoState = errors.New("no state selected and no default state")

	ErrInvalidItemsPerPage = errors.New("items per page must be positive")
	ErrInvalidRows         = errors.New("row count out of range")
	ErrNoGridProvider      = errors.New("no grid provider configured")
	ErrNoItemBuilder       = errors.New("no item builder configured")
	ErrNoLayout            = errors.New("no layout configured")

	// ErrLayoutInUse indicates a layout prepared for a second screen.
	ErrLayoutInUse = errors.New("layout already belongs to another screen")

	// ErrDataType indicates a value that does not match its declared DataType.
	ErrDataType = errors.New("value does not match data type")
)

// ConfigurationError represents a static wiring defect: the screen or router
// was set up in a way that can never work. These are not runtime conditions
// and the caller should fix the setup rather than retry.
type ConfigurationError struct {
	Op  string // Operation that failed (e.g., "create_key", "build")
	Err error  // Underlying error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("igf: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("igf: %s", e.Op)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(op string, err error) *ConfigurationError {
	return &ConfigurationError{Op: op, Err: err}
}

// IsConfigurationError checks if an error is a configuration error.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}
