// SPDX-License-Identifier: MIT

package regular

import "reflect"

// CopyConstruct constructs a copy of src into vacant slot i of s.
//
// The copy is src.Clone() when T implements Cloner[T], the plain value
// otherwise, so the new value compares equal to src and shares no state
// with it. The caller owns the resulting value and destroys it with
// s.Destruct(i) or s.Release().
//
// Errors: the storage errors of s.ConstructWith.
func CopyConstruct[T Semiregular](s *Storage[T], i int, src T) error {
	if err := s.checkVacant("CopyConstruct", i); err != nil {
		return err
	}
	s.place(i, copyOf(src))

	return nil
}

// CopyConstructFrom constructs a T0 from a value of a related type T1 into
// vacant slot i of s. conv states how a T1 becomes a T0; src is copied
// before conversion so conv never sees the caller's value.
func CopyConstructFrom[T0, T1 Semiregular](s *Storage[T0], i int, src T1, conv func(T1) T0) error {
	if err := s.checkVacant("CopyConstructFrom", i); err != nil {
		return err
	}
	s.place(i, conv(copyOf(src)))

	return nil
}

// MoveConstruct moves *src into vacant slot i of s and leaves *src as the
// zero value. On error *src is untouched.
func MoveConstruct[T Semiregular](s *Storage[T], i int, src *T) error {
	if err := s.checkVacant("MoveConstruct", i); err != nil {
		return err
	}
	s.place(i, *src)
	var zero T
	*src = zero

	return nil
}

// CopyAssign replaces *dst with a copy of src. The previous value of *dst is
// destroyed first, unless it is identical (==) to src: assigning a value to
// itself leaves it live and untouched.
//
// A non-comparable Destroyer type without Clone still shares state between
// src and the plain value copy; give such types a Clone method.
func CopyAssign[T Semiregular](dst *T, src T) {
	if identical(*dst, src) {
		return
	}
	v := copyOf(src)
	destroy(dst)
	*dst = v
}

// identical reports a == b for values whose dynamic contents are comparable,
// and false otherwise.
func identical[T any](a, b T) bool {
	if !reflect.ValueOf(&a).Elem().Comparable() || !reflect.ValueOf(&b).Elem().Comparable() {
		return false
	}

	return any(a) == any(b)
}

// MoveAssign replaces *dst with *src and leaves *src as the zero value.
// The previous value of *dst is destroyed. dst == src is a no-op.
func MoveAssign[T Semiregular](dst, src *T) {
	if dst == src {
		return
	}
	v := *src
	var zero T
	*src = zero
	destroy(dst)
	*dst = v
}
