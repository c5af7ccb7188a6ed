// SPDX-License-Identifier: MIT

// Package orbit implements algorithms over transformations: functions from a
// domain back into itself. They are correct for any domain type whose
// equality is an equivalence relation and for any transformation that is a
// pure, deterministic function.
//
// 🚀 What is an orbit?
//
//	The orbit of x under f is the sequence x, f(x), f(f(x)), …
//	It either ends at a point outside the definition space of f
//	(terminating), or eventually enters a cycle. The elements before the
//	cycle form the handle; the first cycle element is the connection point.
//
// ✨ Algorithms:
//   - PowerUnary:      f applied n times to x.
//   - OrbitDistance:   number of applications of f to go from x to y.
//   - CollisionPoint:  slow/fast walk; meets inside the cycle or stops at the end.
//   - Terminating, Circular: orbit shape predicates.
//   - ConnectionPoint: first element of the cycle (or the terminal element).
//   - OrbitStructure:  handle size, cycle size and connection point.
//
// ⚠️ Termination:
//
//	OrbitDistance and ConvergentPoint assume convergence and do not detect
//	its absence: when y is not on the orbit of x the loop never ends. There
//	is no step bound. Use OrbitStructure first when reachability is unknown.
//
// Complexity:
//
//   - PowerUnary:      exactly n applications of f.
//   - OrbitDistance:   exactly d applications, d the returned distance.
//   - CollisionPoint:  at most 3(h + c) applications (h handle, c cycle size).
//   - OrbitStructure:  O(h + c) applications.
//
// Counts are unsigned (Distance, or any type admitted by DistanceType) and
// are not overflow-checked; pick a type wide enough for the orbit at hand.
package orbit
