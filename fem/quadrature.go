package fem

import (
	"fmt"
	"math"
)

// Quadrature is a rule on the reference element [0, 1]: integral of g over
// [0,1] ~ sum_i W[i]*g(R[i]). Physical-domain weights pick up the element
// length dx, which the kernel applies.
//
// Trapezoid is the demo-grade rule (endpoint evaluation, what the classic
// worked example uses); GaussLegendre2 is exact through cubics and is the
// production default. The choice is numerically observable in load vectors
// and error-convergence constants, so it is always explicit.
type Quadrature struct {
	Name string
	R    []float64 // points on [0, 1]
	W    []float64 // weights, summing to 1
}

var (
	Trapezoid = Quadrature{
		Name: "trapezoid",
		R:    []float64{0, 1},
		W:    []float64{0.5, 0.5},
	}
	GaussLegendre2 = Quadrature{
		Name: "gauss2",
		R:    []float64{0.5 - 0.5/math.Sqrt(3), 0.5 + 0.5/math.Sqrt(3)},
		W:    []float64{0.5, 0.5},
	}
)

func QuadratureByName(name string) (q Quadrature, err error) {
	switch name {
	case Trapezoid.Name:
		q = Trapezoid
	case GaussLegendre2.Name, "gauss-legendre":
		q = GaussLegendre2
	default:
		err = fmt.Errorf("unknown quadrature rule %q (have %q, %q)",
			name, Trapezoid.Name, GaussLegendre2.Name)
	}
	return
}
