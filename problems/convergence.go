package problems

import (
	"fmt"
	"math"

	"github.com/notargets/gofem1d/fem"
	"github.com/notargets/gofem1d/mesh"
	"github.com/notargets/gofem1d/solver"
)

// Sample is one row of a convergence study: element count, mesh size, L2
// error, and the observed order against the previous row (0 for the first).
type Sample struct {
	K     int
	H     float64
	L2    float64
	Order float64
}

// ConvergenceStudy solves the case on uniform meshes of the given element
// counts and reports the L2 error decay. For P1 elements the observed order
// approaches 2: doubling the element count cuts the error by about four.
func ConvergenceStudy(c Case, x0, x1 float64, ks []int, q fem.Quadrature, s solver.Interface) (samples []Sample, err error) {
	samples = make([]Sample, 0, len(ks))
	for _, k := range ks {
		var (
			m   *mesh.Mesh
			res *Result
		)
		if m, err = mesh.NewUniform(x0, x1, k); err != nil {
			return
		}
		p := NewPoisson(m, c, q, s)
		if res, err = p.Run(); err != nil {
			return
		}
		sample := Sample{K: k, H: m.H(), L2: res.L2}
		if len(samples) > 0 {
			prev := samples[len(samples)-1]
			sample.Order = math.Log(prev.L2/sample.L2) / math.Log(prev.H/sample.H)
		}
		samples = append(samples, sample)
	}
	return
}

// PrintStudy writes the study as a fixed-width table.
func PrintStudy(samples []Sample) {
	fmt.Printf("%8s %14s %14s %8s\n", "K", "h", "L2 error", "order")
	for _, s := range samples {
		if s.Order == 0 {
			fmt.Printf("%8d %14.6e %14.6e %8s\n", s.K, s.H, s.L2, "-")
		} else {
			fmt.Printf("%8d %14.6e %14.6e %8.3f\n", s.K, s.H, s.L2, s.Order)
		}
	}
}
