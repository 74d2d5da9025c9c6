// Package guard provides a defensive-programming primitive that detects
// domain objects created by bypassing their constructors.
//
// Value objects and commands embed a ConstructorGuard field; the zero value
// of the guard marks the enclosing object as not properly constructed.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero
// value and no custom error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value is invalid; obtain a valid guard via NewConstructorGuard.
// ConstructorGuard is immutable and safe for concurrent use.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
// Constructors assign the result to the guard field of the object they build.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate reports whether the enclosing object was built through its
// constructor. It returns nil for a constructed guard. For a zero-value
// guard it returns notConstructedErr, or ErrDefaultConstructorGuard when
// notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructedErr
}
