// SPDX-License-Identifier: MIT

package orbit

import "github.com/katalvlaran/eop/regular"

// CollisionPoint walks the orbit of x with a slow iterate (one step) and a
// fast iterate (two steps). For a non-terminating orbit it returns the point
// where they meet, which lies on the cycle. For a terminating orbit it
// returns the terminal element: the first element outside the definition
// space p.
//
// Complexity: at most 3(h + c) applications of f.
func CollisionPoint[T regular.Regular](x T, f Transformation[T], p Predicate[T]) T {
	if !p(x) {
		return x
	}
	slow, fast := x, f(x)
	for fast != slow {
		slow = f(slow)
		if !p(fast) {
			return fast
		}
		fast = f(fast)
		if !p(fast) {
			return fast
		}
		fast = f(fast)
	}

	return fast
}

// CollisionPointNonterminating is CollisionPoint for an orbit known not to
// terminate (f defined on every element of the orbit).
func CollisionPointNonterminating[T regular.Regular](x T, f Transformation[T]) T {
	slow, fast := x, f(x)
	for fast != slow {
		slow = f(slow)
		fast = f(f(fast))
	}

	return fast
}

// Terminating reports whether the orbit of x leaves the definition space p.
func Terminating[T regular.Regular](x T, f Transformation[T], p Predicate[T]) bool {
	return !p(CollisionPoint(x, f, p))
}

// Circular reports whether the orbit of x is a pure cycle: it does not
// terminate and x itself lies on the cycle.
func Circular[T regular.Regular](x T, f Transformation[T], p Predicate[T]) bool {
	y := CollisionPoint(x, f, p)

	return p(y) && x == f(y)
}

// ConvergentPoint advances x0 and x1 in lockstep and returns the first point
// where they coincide.
//
// Precondition: some k ≥ 0 has f^k(x0) == f^k(x1). Otherwise
// ConvergentPoint never returns.
func ConvergentPoint[T regular.Regular](x0, x1 T, f Transformation[T]) T {
	for x0 != x1 {
		x0 = f(x0)
		x1 = f(x1)
	}

	return x0
}

// ConnectionPoint returns the first element of the cycle of x's orbit, or
// the terminal element when the orbit terminates.
func ConnectionPoint[T regular.Regular](x T, f Transformation[T], p Predicate[T]) T {
	y := CollisionPoint(x, f, p)
	if !p(y) {
		return y
	}

	// The collision point is as far past the connection point as x is
	// before it, so walking both one step at a time meets there.
	return ConvergentPoint(x, f(y), f)
}

// OrbitStructure returns the handle size, cycle size and connection point of
// the orbit of x. It always terminates.
func OrbitStructure[T regular.Regular](x T, f Transformation[T], p Predicate[T]) Structure[T] {
	y := ConnectionPoint(x, f, p)
	m := OrbitDistance(x, y, f)
	if !p(y) {
		return Structure[T]{Handle: m + 1, Cycle: 0, Connection: y, Terminating: true}
	}

	return Structure[T]{Handle: m, Cycle: OrbitDistance(f(y), y, f) + 1, Connection: y}
}
