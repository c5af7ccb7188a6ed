package regular_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/eop/regular"
)

var sinkB bool

func BenchmarkEqual(b *testing.B) {
	for _, n := range []int{2, 16, 256} {
		xs := make([]int, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkB = regular.Equal(xs...)
			}
		})
	}
}

func BenchmarkStorage_ConstructRelease(b *testing.B) {
	b.ReportAllocs()
	s, err := regular.NewStorage[point](64)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.ConstructAll(); err != nil {
			b.Fatal(err)
		}
		s.Release()
	}
}
