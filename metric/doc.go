// SPDX-License-Identifier: MIT

// Package metric provides the n-ary Euclidean metric helpers used by the
// orbit algorithms and their callers.
//
// What:
//
//   - SquaredDistance(x0, …, xn) = x0² + x1² + … + xn², the squared
//     Euclidean norm of the argument tuple viewed as a vector from the
//     origin. It is not (a-b)².
//   - EuclideanNorm(x0, …, xn) = √SquaredDistance(x0, …, xn).
//   - EuclideanNorm2(x0, x1): the binary case.
//   - Norm[T]: an arity-checked norm functor for callers that fix the
//     dimension once and apply it many times.
//
// Numeric contract:
//
//   - The element type is any integer or floating-point type (Number); the
//     result has the argument type. Other types are rejected at compile time.
//   - The square root is taken in float64 and converted back to T, so
//     integer results are truncated toward zero.
//   - Integer sums of squares may overflow; nothing checks for it.
//
// Errors (Norm only):
//
//   - ErrBadArity       arity < 1 passed to NewNorm
//   - ErrArityMismatch  Apply called with a different number of coordinates
package metric
