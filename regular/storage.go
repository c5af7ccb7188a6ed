// SPDX-License-Identifier: MIT

package regular

import "github.com/bits-and-blooms/bitset"

// Storage is owning raw storage for a fixed number of values of type T.
//
// Each slot is either vacant (raw memory, not an object) or live (holds a
// valid T). Construction moves a slot from vacant to live; destruction moves
// it back. Release destroys every live slot and is meant to be deferred right
// after NewStorage so destruction happens on all exit paths.
//
// Storage is not safe for concurrent use.
type Storage[T any] struct {
	slots []T
	live  *bitset.BitSet
	opts  Options[T]
}

// NewStorage allocates n vacant slots.
//
// Errors: ErrBadSize if n < 0.
// Complexity: O(n).
func NewStorage[T any](n int, opts ...Option[T]) (*Storage[T], error) {
	if n < 0 {
		return nil, regularErrorf("NewStorage", ErrBadSize)
	}

	return &Storage[T]{
		slots: make([]T, n),
		live:  bitset.New(uint(n)),
		opts:  gatherOptions(opts),
	}, nil
}

// Len returns the number of slots.
func (s *Storage[T]) Len() int {
	if s == nil {
		return 0
	}

	return len(s.slots)
}

// Live returns the number of live slots.
func (s *Storage[T]) Live() int {
	if s == nil {
		return 0
	}

	return int(s.live.Count())
}

// Occupied reports whether slot i holds a value. Out-of-range indices are
// reported as not occupied.
func (s *Storage[T]) Occupied(i int) bool {
	if s == nil || i < 0 || i >= len(s.slots) {
		return false
	}

	return s.live.Test(uint(i))
}

// At returns a pointer to the live value in slot i. The pointer is valid
// until the slot is destroyed.
//
// Errors: ErrNilStorage, ErrOutOfRange, ErrVacant.
func (s *Storage[T]) At(i int) (*T, error) {
	if err := s.check("At", i); err != nil {
		return nil, err
	}
	if !s.live.Test(uint(i)) {
		return nil, regularErrorf("At", ErrVacant)
	}

	return &s.slots[i], nil
}

// Construct default-constructs slot i: a copy of the configured initializer,
// or the zero value.
//
// Precondition: slot i is vacant.
// Errors: ErrNilStorage, ErrOutOfRange, ErrOccupied.
func (s *Storage[T]) Construct(i int) error {
	if err := s.checkVacant("Construct", i); err != nil {
		return err
	}
	s.place(i, s.initial())

	return nil
}

// ConstructWith constructs slot i holding v. v is stored as a plain value
// copy; use CopyConstruct for a deep copy.
//
// Precondition: slot i is vacant.
// Errors: ErrNilStorage, ErrOutOfRange, ErrOccupied.
func (s *Storage[T]) ConstructWith(i int, v T) error {
	if err := s.checkVacant("ConstructWith", i); err != nil {
		return err
	}
	s.place(i, v)

	return nil
}

// ConstructAll default-constructs every slot. Nothing is constructed unless
// all slots are vacant.
//
// Errors: ErrNilStorage, ErrOccupied.
func (s *Storage[T]) ConstructAll() error {
	if s == nil {
		return regularErrorf("ConstructAll", ErrNilStorage)
	}
	if s.live.Any() {
		return regularErrorf("ConstructAll", ErrOccupied)
	}
	for i := range s.slots {
		s.place(i, s.initial())
	}

	return nil
}

// Destruct destroys the value in slot i: the finalizer runs first, then the
// value's Destroyer hook, then the slot is zeroed and becomes vacant.
//
// Precondition: slot i is live.
// Errors: ErrNilStorage, ErrOutOfRange, ErrVacant.
func (s *Storage[T]) Destruct(i int) error {
	if err := s.check("Destruct", i); err != nil {
		return err
	}
	if !s.live.Test(uint(i)) {
		return regularErrorf("Destruct", ErrVacant)
	}
	s.remove(i)

	return nil
}

// DestructAll destroys every slot. Nothing is destroyed unless all slots are
// live; use Release to destroy whatever is live.
//
// Errors: ErrNilStorage, ErrVacant.
func (s *Storage[T]) DestructAll() error {
	if s == nil {
		return regularErrorf("DestructAll", ErrNilStorage)
	}
	if int(s.live.Count()) != len(s.slots) {
		return regularErrorf("DestructAll", ErrVacant)
	}
	s.Release()

	return nil
}

// Release destroys every live slot in ascending index order. It is
// idempotent and safe on a nil Storage.
func (s *Storage[T]) Release() {
	if s == nil {
		return
	}
	for i, ok := s.live.NextSet(0); ok; i, ok = s.live.NextSet(i + 1) {
		s.remove(int(i))
	}
}

func (s *Storage[T]) initial() T {
	if s.opts.hasInit {
		return copyOf(s.opts.init)
	}
	var zero T

	return zero
}

func (s *Storage[T]) place(i int, v T) {
	s.slots[i] = v
	s.live.Set(uint(i))
	if s.opts.OnConstruct != nil {
		s.opts.OnConstruct(i)
	}
}

func (s *Storage[T]) remove(i int) {
	if s.opts.finalizer != nil {
		s.opts.finalizer(&s.slots[i])
	}
	destroy(&s.slots[i])
	var zero T
	s.slots[i] = zero
	s.live.Clear(uint(i))
	if s.opts.OnDestruct != nil {
		s.opts.OnDestruct(i)
	}
}

func (s *Storage[T]) check(method string, i int) error {
	if s == nil {
		return regularErrorf(method, ErrNilStorage)
	}
	if i < 0 || i >= len(s.slots) {
		return regularErrorf(method, ErrOutOfRange)
	}

	return nil
}

func (s *Storage[T]) checkVacant(method string, i int) error {
	if err := s.check(method, i); err != nil {
		return err
	}
	if s.live.Test(uint(i)) {
		return regularErrorf(method, ErrOccupied)
	}

	return nil
}
