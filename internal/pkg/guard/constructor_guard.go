// Package guard provides the constructor guard pattern used by domain
// objects, commands, and queries to reject zero-value instances that
// bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error, so that validation of a zero-value object always
// fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// designated constructor. A zero-value guard fails validation, which lets
// domain objects detect direct struct initialization.
//
// Example:
//
//	type ShipBatchCommand struct {
//	    lineIDs []kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewShipBatchCommand(...) (ShipBatchCommand, error) {
//	    return ShipBatchCommand{..., guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ShipBatchCommand) Validate() error {
//	    return c.guard.Validate(ErrShipBatchCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value
// guard it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
