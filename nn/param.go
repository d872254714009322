package nn

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/spectra/matrix"
)

// Param is a learned tensor with a stable dotted name (e.g. "filter.decoder.weight").
// Value is created once at construction; only an optimizer outside the forward
// pass may change its contents.
type Param struct {
	Name  string
	Value *matrix.Dense
}

// Size returns the number of scalar entries in the parameter.
func (p *Param) Size() int { return p.Value.Rows() * p.Value.Cols() }

// Module is anything that owns parameters.
type Module interface {
	Parameters() []*Param
}

// CountParams sums Size over ps.
func CountParams(ps []*Param) int {
	n := 0
	for _, p := range ps {
		n += p.Size()
	}

	return n
}

// Collect concatenates the parameters of several modules in argument order.
func Collect(mods ...Module) []*Param {
	var out []*Param
	for _, m := range mods {
		out = append(out, m.Parameters()...)
	}

	return out
}

// joinName builds a dotted parameter path, skipping an empty prefix.
func joinName(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "." + name
}

// newParam allocates a rows×cols zero parameter.
func newParam(name string, rows, cols int) (*Param, error) {
	v, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	return &Param{Name: name, Value: v}, nil
}

// fillUniform draws every entry from U(-bound, bound) in row-major order.
func fillUniform(p *Param, bound float64, rng *rand.Rand) {
	data := p.Value.Data()
	for i := range data {
		data[i] = (2*rng.Float64() - 1) * bound
	}
}

// fillConst sets every entry to v.
func fillConst(p *Param, v float64) {
	data := p.Value.Data()
	for i := range data {
		data[i] = v
	}
}

// fanInBound is the U(-1/√fanIn, 1/√fanIn) bound used for linear layers.
func fanInBound(fanIn int) float64 { return 1 / math.Sqrt(float64(fanIn)) }

// xavierBound is the Glorot-uniform bound √(6/(fanIn+fanOut)).
func xavierBound(fanIn, fanOut int) float64 {
	return math.Sqrt(6 / float64(fanIn+fanOut))
}
