// SPDX-License-Identifier: MIT

package regular

import (
	"errors"
	"fmt"
)

// Sentinel errors for raw storage and linear wrappers.
var (
	// ErrNilStorage indicates that a nil *Storage was used.
	ErrNilStorage = errors.New("regular: storage is nil")

	// ErrBadSize indicates a negative slot count was requested.
	ErrBadSize = errors.New("regular: invalid storage size")

	// ErrOutOfRange indicates a slot index outside [0, Len()).
	ErrOutOfRange = errors.New("regular: slot index out of range")

	// ErrOccupied indicates construction into a slot that already holds a value.
	ErrOccupied = errors.New("regular: slot is occupied")

	// ErrVacant indicates access to, or destruction of, a slot holding no value.
	ErrVacant = errors.New("regular: slot is vacant")

	// ErrMovedFrom indicates a read from a Unique whose value was moved out.
	ErrMovedFrom = errors.New("regular: value was moved from")

	// ErrNilUnique indicates a nil *Unique was given as a move destination.
	ErrNilUnique = errors.New("regular: unique is nil")
)

// regularErrorf attaches the failing method to a sentinel.
func regularErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// Semiregular admits types that can be constructed, destroyed, copied,
// moved and assigned. Go values always can.
type Semiregular interface {
	any
}

// Regular is Semiregular plus an equality test.
type Regular interface {
	comparable
}

// Equaler is implemented by types with semantic equality.
// Equal must be reflexive, symmetric and transitive.
type Equaler[T any] interface {
	Equal(other T) bool
}

// Cloner is implemented by types whose copy must not share state with the
// original (slices, maps, pointers inside).
type Cloner[T any] interface {
	// Clone returns a copy equal to the receiver.
	Clone() T
}

// Destroyer is implemented by types that hold something to release when the
// value is destroyed. Either a value or a pointer receiver is honoured.
type Destroyer interface {
	Destroy()
}

// copyOf returns a copy of v: Clone when T provides it, the value otherwise.
func copyOf[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}

	return v
}

// destroy runs the Destroyer hook of *p, if any.
func destroy[T any](p *T) {
	if d, ok := any(p).(Destroyer); ok {
		d.Destroy()
		return
	}
	if d, ok := any(*p).(Destroyer); ok {
		d.Destroy()
	}
}
