// Package eop is a small library of generic-programming primitives: the
// value-semantics contracts a type must meet to be used by generic
// algorithms, and algorithms over transformations written only against
// those contracts.
//
// 🚀 What is inside?
//
//	Every algorithm is stated in terms of the algebraic properties of its
//	domain type (an equivalence relation for equality, copy and move
//	semantics) and works for any type that has them:
//		• Regularity contracts: Semiregular / Regular constraints, raw
//		  storage with paired construct/destroy, copy & move construction
//		  and assignment, chained n-ary equality, move-only wrappers
//		• Transformations & orbits: iterated application, orbit distance,
//		  collision and connection points, orbit structure
//		• Metric: n-ary squared distance and Euclidean norm
//
// ✨ Design:
//
//   - Pure functions: no I/O, no logging, no global state
//   - Capabilities are Go constraints, checked at compile time
//   - Runtime errors only at the raw-storage boundary (sentinels, errors.Is)
//   - Documented non-termination instead of silent step bounds
//
// Packages:
//
//	regular/ — Semiregular/Regular, Storage, CopyConstruct, MoveAssign, Equal, Unique
//	orbit/   — PowerUnary, OrbitDistance, OrbitStructure and friends
//	metric/  — SquaredDistance, EuclideanNorm, Norm
//
// Quick example:
//
//	succ := func(x int) int { return x + 1 }
//	orbit.PowerUnary(0, 5, succ)    // 5
//	orbit.OrbitDistance(0, 7, succ) // 7
//	metric.EuclideanNorm(3, 4)      // 5
//	regular.Equal(2, 2, 3)          // false
//
//	go get github.com/katalvlaran/eop
package eop
