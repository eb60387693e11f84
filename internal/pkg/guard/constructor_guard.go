// Package guard provides a small helper that detects value objects and
// commands created without going through their constructor.
package guard

import "errors"

// ErrNotConstructed is the default error returned when a zero-value guard is
// validated and no custom error was supplied.
var ErrNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs whose zero value must be rejected.
// A guard produced by NewConstructorGuard validates successfully; the zero
// value does not.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as properly
// constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
// Otherwise it returns notConstructedErr, or ErrNotConstructed when
// notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrNotConstructed
	}
	return notConstructedErr
}
