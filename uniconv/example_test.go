package uniconv_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/spectra/matrix"
	"github.com/katalvlaran/spectra/nn"
	"github.com/katalvlaran/spectra/spectral"
	"github.com/katalvlaran/spectra/uniconv"
)

// ExampleModel_Forward classifies the vertices of a 4-cycle.
func ExampleModel_Forward() {
	basis, err := spectral.FromEdges(4, []spectral.Edge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 0},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	x, _ := matrix.NewDenseFrom(4, 2, []float64{1, 0, 0, 1, 1, 0, 0, 1})

	cfg := uniconv.DefaultConfig()
	cfg.HiddenDim, cfg.SignalDim, cfg.FilterDim = 16, 8, 8
	model, err := uniconv.New(2, 3, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	pred, err := model.Forward(nn.Eval(), basis.Values, basis.Vectors, x)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(pred.Rows(), pred.Cols())
	// Output:
	// 4 3
}

// ExampleWrapper_Forward returns the (value, signal) pair.
func ExampleWrapper_Forward() {
	u, _ := matrix.NewIdentity(3)
	x, _ := matrix.NewDenseFrom(3, 1, []float64{0.1, 0.2, 0.3})

	cfg := uniconv.DefaultConfig()
	cfg.HiddenDim, cfg.SignalDim, cfg.FilterDim = 8, 4, 4
	w, err := uniconv.NewWrapper(1, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	value, signal, err := w.Forward(nn.Eval(), []float64{0, 1, 2}, u, x)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(value.Rows(), value.Cols(), signal.Rows(), signal.Cols())
	// Output:
	// 3 1 3 1
}

// ExampleLoadConfig reads a YAML hyperparameter mapping.
func ExampleLoadConfig() {
	cfg, err := uniconv.LoadConfig(strings.NewReader("hidden_dim: 32\nnlayer: 1\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(cfg.HiddenDim, cfg.SignalDim, cfg.NLayer)
	// Output:
	// 32 64 1
}
