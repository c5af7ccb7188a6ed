// SPDX-License-Identifier: MIT

// Package regular describes what it means for a type to take part in the
// generic algorithms of this module, and implements the value-semantics
// operations such a type needs without per-type boilerplate.
//
// What:
//
//   - Capabilities as Go constraints:
//   - Semiregular: constructible, destructible, copyable, movable and
//     assignable. Every Go type is, so the constraint admits any type.
//   - Regular: Semiregular with equality. In Go this is comparable.
//   - Equaler[T]: semantic equality for types whose == is not the relation
//     the algorithms should use.
//   - Cloner[T]: deep copy for types whose plain value copy would alias.
//   - Destroyer: release hook run when a value is destroyed.
//   - Storage[T]: raw storage with paired construct/destroy calls. A slot is
//     either vacant (raw memory) or live (holds a valid T).
//   - CopyConstruct / CopyConstructFrom / MoveConstruct: construct a live
//     value into a vacant slot.
//   - CopyAssign / MoveAssign: replace an already-constructed value.
//   - Equal / EqualFunc / EqualBy / EqualWith: chained n-ary equality.
//   - Unique[T]: a move-only (linear) wrapper.
//
// Contracts:
//
//   - A moved-from value is left as the zero value of its type.
//   - Assignment destroys the previous destination value (Destroyer) before
//     the new value becomes visible.
//   - Equality supplied by a type must be an equivalence relation; nothing
//     here verifies it.
//   - Only Storage reports runtime errors (index, occupancy). The value
//     operations are precondition-disciplined and return plain values.
//
// Errors:
//
//   - ErrNilStorage  storage pointer is nil
//   - ErrBadSize     negative storage size
//   - ErrOutOfRange  slot index outside [0, Len())
//   - ErrOccupied    construct into a live slot
//   - ErrVacant      access or destroy a vacant slot
//   - ErrMovedFrom   read from a Unique whose value was moved out
//   - ErrNilUnique   nil Unique given as a move destination
//
// Example:
//
//	s, _ := regular.NewStorage[Point](4)
//	defer s.Release()
//	_ = regular.CopyConstruct(s, 0, Point{X: 1, Y: 2})
//	p, _ := s.At(0)
//	regular.Equal(*p, Point{X: 1, Y: 2}) // true
package regular
