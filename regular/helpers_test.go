package regular_test

import (
	"slices"

	"github.com/katalvlaran/eop/regular"
)

// point is a plain Regular type: == is its equality, a value copy is a full copy.
type point struct{ X, Y int }

// buffer shares its backing array on a value copy, so it supplies Clone,
// Equal and a Destroy hook that records how often it ran.
type buffer struct {
	data      []int
	destroyed *int
}

func (b buffer) Clone() buffer {
	return buffer{data: slices.Clone(b.data), destroyed: b.destroyed}
}

func (b buffer) Equal(o buffer) bool {
	return slices.Equal(b.data, o.data)
}

func (b *buffer) Destroy() {
	if b.destroyed != nil {
		*b.destroyed++
	}
}

// modular compares integers modulo 3: a semantic equality distinct from ==.
type modular int

func (m modular) Equal(o modular) bool { return m%3 == o%3 }

// handle owns a shared resource and has no Clone: a value copy aliases it.
type handle struct{ open *bool }

func (h handle) Destroy() { *h.open = false }

var (
	_ regular.Destroyer        = handle{}
	_ regular.Cloner[buffer]   = buffer{}
	_ regular.Equaler[buffer]  = buffer{}
	_ regular.Destroyer        = (*buffer)(nil)
	_ regular.Equaler[modular] = modular(0)
)
