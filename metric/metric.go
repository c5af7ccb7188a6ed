// SPDX-License-Identifier: MIT

package metric

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

var (
	// ErrBadArity indicates a norm was requested over fewer than one coordinate.
	ErrBadArity = errors.New("metric: arity must be >= 1")

	// ErrArityMismatch indicates a coordinate count different from the norm's arity.
	ErrArityMismatch = errors.New("metric: coordinate count does not match arity")
)

// Number is the arithmetic element type of the metric helpers.
type Number interface {
	constraints.Integer | constraints.Float
}

// SquaredDistance returns the sum of the squares of xs. Zero coordinates
// yield 0.
//
// Complexity: O(len(xs)).
func SquaredDistance[T Number](xs ...T) T {
	var sum T
	for _, x := range xs {
		sum += x * x
	}

	return sum
}

// EuclideanNorm returns √(x0² + … + xn²) in the element type T.
func EuclideanNorm[T Number](xs ...T) T {
	return T(math.Sqrt(float64(SquaredDistance(xs...))))
}

// EuclideanNorm2 is EuclideanNorm for exactly two coordinates.
func EuclideanNorm2[T Number](x0, x1 T) T {
	return T(math.Sqrt(float64(x0*x0 + x1*x1)))
}

// Norm is a Euclidean norm over a fixed number of coordinates.
type Norm[T Number] struct {
	arity int
}

// NewNorm returns the norm over arity coordinates.
//
// Errors: ErrBadArity if arity < 1.
func NewNorm[T Number](arity int) (Norm[T], error) {
	if arity < 1 {
		return Norm[T]{}, fmt.Errorf("NewNorm(%d): %w", arity, ErrBadArity)
	}

	return Norm[T]{arity: arity}, nil
}

// Arity returns the number of coordinates n expects.
func (n Norm[T]) Arity() int {
	return n.arity
}

// Apply returns the Euclidean norm of xs.
//
// Errors: ErrArityMismatch if len(xs) != n.Arity().
func (n Norm[T]) Apply(xs ...T) (T, error) {
	if len(xs) != n.arity {
		var zero T
		return zero, fmt.Errorf("Apply: got %d coordinates, want %d: %w", len(xs), n.arity, ErrArityMismatch)
	}
	if n.arity == 2 {
		return EuclideanNorm2(xs[0], xs[1]), nil
	}

	return EuclideanNorm(xs...), nil
}
