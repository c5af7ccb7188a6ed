// SPDX-License-Identifier: MIT

package orbit

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/eop/regular"
)

// PowerUnary applies f to x exactly n times and returns the result.
// n == 0 returns x unchanged. A negative n is outside the domain of the
// operation; it is treated as zero applications.
//
// Complexity: exactly n applications of f, no memoization, no early exit.
func PowerUnary[T any, N constraints.Integer](x T, n N, f Transformation[T]) T {
	for n > 0 {
		x = f(x)
		n--
	}

	return x
}

// OrbitDistance returns the number of applications of f needed to go from x
// to y. x == y returns 0 without calling f.
//
// Precondition: y is on the orbit of x under f. Otherwise OrbitDistance
// never returns.
func OrbitDistance[T regular.Regular](x, y T, f Transformation[T]) Distance {
	return OrbitDistanceAs[Distance](x, y, f)
}

// OrbitDistanceAs is OrbitDistance counting in the caller's unsigned type D.
// D must be wide enough for the true distance; overflow is not detected.
func OrbitDistanceAs[D DistanceType, T regular.Regular](x, y T, f Transformation[T]) D {
	var n D
	for x != y {
		x = f(x)
		n++
	}

	return n
}

// OrbitDistanceFunc is OrbitDistance under the equivalence relation eq,
// for domains whose == is not the intended equality.
func OrbitDistanceFunc[T any](x, y T, f Transformation[T], eq func(a, b T) bool) Distance {
	var n Distance
	for !eq(x, y) {
		x = f(x)
		n++
	}

	return n
}
