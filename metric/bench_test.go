package metric_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/eop/metric"
)

var sinkF float64

func BenchmarkEuclideanNorm(b *testing.B) {
	for _, n := range []int{2, 3, 64} {
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = float64(i) + 0.5
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkF = metric.EuclideanNorm(xs...)
			}
		})
	}
}
