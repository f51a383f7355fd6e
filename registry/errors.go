package registry

import (
	"errors"
	"fmt"
)

// ErrNotRegistered is the sentinel matched by errors.Is for any resolution
// of a key that has no registration in the requested namespace.
var ErrNotRegistered = errors.New("not registered")

// NotRegisteredError reports a resolution of an unregistered key. It carries
// the offending key and namespace for diagnostics.
type NotRegisteredError struct {
	Key  string
	Kind Kind
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("registry: %s %q not registered", e.Kind, e.Key)
}

// Is reports whether target is ErrNotRegistered, so callers can match with
// errors.Is without depending on the concrete type.
func (e *NotRegisteredError) Is(target error) bool {
	return target == ErrNotRegistered
}
