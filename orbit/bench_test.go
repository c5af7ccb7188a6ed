package orbit_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/eop/orbit"
)

var (
	sinkU uint64
	sinkD orbit.Distance
)

func xorshift(x uint64) uint64 {
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	return x
}

func BenchmarkPowerUnary(b *testing.B) {
	for _, n := range []int{16, 1024, 65536} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkU = orbit.PowerUnary(uint64(i)+1, n, xorshift)
			}
		})
	}
}

func BenchmarkOrbitDistance(b *testing.B) {
	for _, n := range []int{16, 1024, 65536} {
		y := orbit.PowerUnary(uint64(1), n, xorshift)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkD = orbit.OrbitDistance(uint64(1), y, xorshift)
			}
		})
	}
}
