// SPDX-License-Identifier: MIT

package regular

// Equal reports whether every adjacent pair of xs compares equal with ==.
// Because == on a Regular type is an equivalence relation, that means all
// values are mutually equal. Fewer than two values are trivially equal.
//
// Complexity: at most len(xs)-1 comparisons, stops at the first mismatch.
func Equal[T Regular](xs ...T) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i-1] != xs[i] {
			return false
		}
	}

	return true
}

// EqualFunc is Equal under the caller's equivalence relation eq.
func EqualFunc[T any](eq func(a, b T) bool, xs ...T) bool {
	for i := 1; i < len(xs); i++ {
		if !eq(xs[i-1], xs[i]) {
			return false
		}
	}

	return true
}

// EqualBy is Equal under the semantic equality of T.
func EqualBy[T Equaler[T]](xs ...T) bool {
	return EqualFunc(func(a, b T) bool { return a.Equal(b) }, xs...)
}

// EqualWith compares one value of T against values of a related type U,
// where eq(x, y) is the cross-type equality. It reports whether eq(x, y)
// holds for every y; the ys are not compared with each other. With a single
// y it is plain binary equality.
func EqualWith[T, U any](eq func(T, U) bool, x T, ys ...U) bool {
	for _, y := range ys {
		if !eq(x, y) {
			return false
		}
	}

	return true
}

// Equality is a stateless n-ary equality predicate over T. Its zero value is
// ready to use and can be passed wherever a predicate object is expected.
type Equality[T Regular] struct{}

// Holds reports Equal(xs...).
func (Equality[T]) Holds(xs ...T) bool {
	return Equal(xs...)
}

// Binary returns the predicate as a plain binary function.
func (Equality[T]) Binary() func(a, b T) bool {
	return func(a, b T) bool { return a == b }
}
