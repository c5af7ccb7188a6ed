// SPDX-License-Identifier: MIT

package orbit

import "golang.org/x/exp/constraints"

// Transformation is a unary self-map on the domain T. It must be total on
// the values it is applied to, deterministic and free of observable side
// effects.
type Transformation[T any] func(T) T

// Predicate reports whether its argument belongs to the definition space of
// a transformation: p(x) true means f(x) is defined.
type Predicate[T any] func(T) bool

// DistanceType admits the unsigned integer types used to count applications
// of a transformation.
type DistanceType interface {
	constraints.Unsigned
}

// Distance is the default step counter.
type Distance = uint64

// Structure describes the shape of an orbit.
//
// For a terminating orbit Handle is the number of elements, from the start
// to the terminal element inclusive, Cycle is 0 and Connection is the
// terminal element. Otherwise Handle is the number of elements before the
// cycle, Cycle is the number of elements in the cycle and Connection is the
// first cycle element.
type Structure[T any] struct {
	Handle      Distance
	Cycle       Distance
	Connection  T
	Terminating bool
}

// Total returns the predicate of a transformation defined everywhere.
func Total[T any]() Predicate[T] {
	return func(T) bool { return true }
}
