// SPDX-License-Identifier: MIT

package regular

// Option configures a Storage. Options are applied in order by NewStorage.
type Option[T any] func(*Options[T])

// Options holds the construction/destruction policy of a Storage.
type Options[T any] struct {
	// init is the value default construction copies into a slot.
	// Without it a slot is constructed as the zero value.
	init    T
	hasInit bool

	// finalizer runs on a live slot right before it is destroyed.
	finalizer func(*T)

	// OnConstruct, if non-nil, is invoked after slot i becomes live.
	OnConstruct func(i int)

	// OnDestruct, if non-nil, is invoked after slot i becomes vacant.
	OnDestruct func(i int)
}

// DefaultOptions returns the policy used when no Option is given:
// zero-value construction, no finalizer, no hooks.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{}
}

// WithInitializer makes Construct copy v into the slot instead of the zero value.
func WithInitializer[T any](v T) Option[T] {
	return func(o *Options[T]) {
		o.init = v
		o.hasInit = true
	}
}

// WithFinalizer installs fn to run on every value before it is destroyed.
// fn must not be nil.
func WithFinalizer[T any](fn func(*T)) Option[T] {
	if fn == nil {
		panic("regular: WithFinalizer: fn must not be nil")
	}

	return func(o *Options[T]) {
		o.finalizer = fn
	}
}

// WithOnConstruct installs a hook called with the index of each slot that
// becomes live.
func WithOnConstruct[T any](fn func(i int)) Option[T] {
	return func(o *Options[T]) {
		o.OnConstruct = fn
	}
}

// WithOnDestruct installs a hook called with the index of each slot that
// becomes vacant.
func WithOnDestruct[T any](fn func(i int)) Option[T] {
	return func(o *Options[T]) {
		o.OnDestruct = fn
	}
}

func gatherOptions[T any](opts []Option[T]) Options[T] {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
