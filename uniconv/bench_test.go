package uniconv_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/spectra/matrix"
	"github.com/katalvlaran/spectra/nn"
	"github.com/katalvlaran/spectra/uniconv"
)

// sink to defeat dead-code elimination
var sinkPred *matrix.Dense

func BenchmarkModelForward(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{16, 64, 128} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			e, u, x := ringInputs(b, n, 8)
			m, err := uniconv.New(8, 4, uniconv.DefaultConfig())
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				pred, err := m.Forward(nn.Eval(), e, u, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkPred = pred
			}
		})
	}
}
