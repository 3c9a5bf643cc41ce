package fem

import (
	"fmt"
	"math"

	"github.com/notargets/gofem1d/mesh"
	"github.com/notargets/gofem1d/utils"
)

// Integrate evaluates a functional of the discrete solution over the mesh by
// the same per-element quadrature discipline as assembly: at each quadrature
// point the P1 interpolant of U and its (element-constant) derivative are
// fed to the functional, weighted by W*dx, and summed over elements.
func Integrate(m *mesh.Mesh, U utils.Vector, fn Functional, q Quadrature) (total float64, err error) {
	if U.Len() != m.NumNodes() {
		err = fmt.Errorf("%w: solution has %d entries for %d nodes",
			ErrInconsistentPartition, U.Len(), m.NumNodes())
		return
	}
	var p FormInput
	for e := 0; e < m.NumElements(); e++ {
		xl, xr := m.Element(e)
		dx := xr - xl
		if dx <= 0 {
			err = fmt.Errorf("%w: [%v, %v]", ErrDegenerateElement, xl, xr)
			return
		}
		ix := m.ElementNodes(e)
		ul, ur := U.AtVec(ix[0]), U.AtVec(ix[1])
		du := (ur - ul) / dx
		for k, t := range q.R {
			p.X = xl + t*dx
			p.U = (1-t)*ul + t*ur
			p.DU = du
			total += q.W[k] * dx * fn.Value(&p)
		}
	}
	return
}

// L2Error computes the trapezoid-rule L2 norm of U - exact: per element the
// squared endpoint differences weighted by dx/2, summed, then rooted. The
// estimate is second-order accurate, so halving h cuts the reported error by
// about four.
func L2Error(m *mesh.Mesh, U utils.Vector, exact func(float64) float64) float64 {
	total, err := Integrate(m, U, SquaredError{Exact: exact}, Trapezoid)
	if err != nil {
		panic(err)
	}
	return math.Sqrt(total)
}

// H1SemiError computes the trapezoid-rule H1 seminorm of the error, i.e. the
// L2 norm of U' - dexact.
func H1SemiError(m *mesh.Mesh, U utils.Vector, dexact func(float64) float64) float64 {
	total, err := Integrate(m, U, SquaredGradError{DExact: dexact}, Trapezoid)
	if err != nil {
		panic(err)
	}
	return math.Sqrt(total)
}

// Interpolate evaluates the P1 interpolant of U at x. Elements are scanned
// directly, so the mesh need not be spatially ordered (refined meshes are
// not). Points on shared nodes resolve to the same value from either side.
func Interpolate(m *mesh.Mesh, U utils.Vector, x float64) (val float64, err error) {
	if U.Len() != m.NumNodes() {
		err = fmt.Errorf("%w: solution has %d entries for %d nodes",
			ErrInconsistentPartition, U.Len(), m.NumNodes())
		return
	}
	for e := 0; e < m.NumElements(); e++ {
		xl, xr := m.Element(e)
		if x < xl || x > xr {
			continue
		}
		ix := m.ElementNodes(e)
		t := (x - xl) / (xr - xl)
		val = (1-t)*U.AtVec(ix[0]) + t*U.AtVec(ix[1])
		return
	}
	x0, x1 := m.Bounds()
	err = fmt.Errorf("point %v outside mesh domain [%v, %v]", x, x0, x1)
	return
}

// SamplePoints returns ns+1 evenly spaced coordinates spanning the mesh
// domain, for consumers that probe the solution pointwise. ns must be
// positive.
func SamplePoints(m *mesh.Mesh, ns int) (xs []float64) {
	if ns < 1 {
		panic(fmt.Errorf("SamplePoints needs at least one interval, got ns = %d", ns))
	}
	x0, x1 := m.Bounds()
	h := (x1 - x0) / float64(ns)
	xs = make([]float64, ns+1)
	for i := range xs {
		xs[i] = x0 + float64(i)*h
	}
	xs[ns] = x1
	return
}
