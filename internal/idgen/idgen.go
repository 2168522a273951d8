package idgen

import "github.com/google/uuid"

// NewFunc returns a new globally unique identifier. Override in tests for
// determinism.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new identifier.
func New() string { return NewFunc() }

// NewWithPrefix returns a new identifier prefixed with the supplied name.
func NewWithPrefix(prefix string) string {
	if prefix == "" {
		return New()
	}
	return prefix + "/" + New()
}
