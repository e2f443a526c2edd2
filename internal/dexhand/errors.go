package dexhand

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by registry lookups for unknown controller ids.
	ErrNotFound = errors.New("dexhand: controller not found")

	// ErrNotReady is returned for motion commands issued before the
	// controller is connected and enabled.
	ErrNotReady = errors.New("dexhand: controller is not connected and enabled")

	// ErrInvalidState is returned when an operation requires a lifecycle
	// state the controller has not reached.
	ErrInvalidState = errors.New("dexhand: operation invalid in current state")

	// ErrInvalidArgument is returned for malformed operation inputs.
	ErrInvalidArgument = errors.New("dexhand: invalid argument")

	// ErrNotImplemented is returned at construction for declared but
	// unsupported arm/hand vendor combinations.
	ErrNotImplemented = errors.New("dexhand: device type not implemented")
)

// ConnectionError wraps a transport failure surfaced while talking to a
// device.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("dexhand: %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }
