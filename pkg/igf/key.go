package igf

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/SwiftStorm-Studio/igf/pkg/igf/constants"
)

var (
	namespacePattern = regexp.MustCompile(constants.NamespacePattern)
	keyNamePattern   = regexp.MustCompile(constants.KeyNamePattern)
)

// Key is a namespaced identifier for data attached to an item,
// rendered as "namespace:name".
type Key struct {
	Namespace string
	Name      string
}

// NewKey validates namespace and name and returns the key.
// Keys are normally created through the router, which supplies the namespace.
func NewKey(namespace, name string) (Key, error) {
	if err := ValidateNamespace(namespace); err != nil {
		return Key{}, err
	}
	if !keyNamePattern.MatchString(name) {
		return Key{}, NewConfigurationError("create_key", fmt.Errorf("%w: name %q", ErrInvalidKey, name))
	}
	return Key{Namespace: namespace, Name: name}, nil
}

// ParseKey parses "namespace:name".
func ParseKey(s string) (Key, error) {
	namespace, name, ok := strings.Cut(s, constants.KeySeparator)
	if !ok {
		return Key{}, NewConfigurationError("parse_key", fmt.Errorf("%w: %q has no namespace", ErrInvalidKey, s))
	}
	return NewKey(namespace, name)
}

// ValidateNamespace reports whether namespace is usable as a key namespace.
func ValidateNamespace(namespace string) error {
	if len(namespace) > constants.MaxNamespaceLength || !namespacePattern.MatchString(namespace) {
		return NewConfigurationError("create_key", fmt.Errorf("%w: namespace %q", ErrInvalidKey, namespace))
	}
	return nil
}

func (k Key) String() string {
	return k.Namespace + constants.KeySeparator + k.Name
}

// IsZero reports whether the key is unset.
func (k Key) IsZero() bool {
	return k.Namespace == "" && k.Name == ""
}
