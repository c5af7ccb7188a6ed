// SPDX-License-Identifier: MIT

package regular

// noCopy lets `go vet` (copylocks) flag accidental copies of a Unique.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Unique is a linear wrapper: its value can be moved but not copied.
// After Take or MoveTo the wrapper is moved-from and reads fail with
// ErrMovedFrom. Always handle a Unique through its pointer.
type Unique[T any] struct {
	_     noCopy
	val   T
	valid bool
}

// NewUnique wraps v. The caller should not keep other references to v.
func NewUnique[T any](v T) *Unique[T] {
	return &Unique[T]{val: v, valid: true}
}

// Valid reports whether u still holds a value.
func (u *Unique[T]) Valid() bool {
	return u != nil && u.valid
}

// Get returns the held value without moving it.
func (u *Unique[T]) Get() (T, error) {
	if !u.Valid() {
		var zero T
		return zero, regularErrorf("Get", ErrMovedFrom)
	}

	return u.val, nil
}

// Take moves the value out, leaving u moved-from.
func (u *Unique[T]) Take() (T, error) {
	if !u.Valid() {
		var zero T
		return zero, regularErrorf("Take", ErrMovedFrom)
	}
	v := u.val
	var zero T
	u.val = zero
	u.valid = false

	return v, nil
}

// MoveTo move-assigns u into dst: the previous value of dst (if any) is
// destroyed, dst takes u's value and u becomes moved-from. On error u is
// left untouched.
func (u *Unique[T]) MoveTo(dst *Unique[T]) error {
	if dst == nil {
		return regularErrorf("MoveTo", ErrNilUnique)
	}
	if u == dst {
		return nil
	}
	v, err := u.Take()
	if err != nil {
		return regularErrorf("MoveTo", err)
	}
	if dst.valid {
		destroy(&dst.val)
	}
	dst.val = v
	dst.valid = true

	return nil
}
