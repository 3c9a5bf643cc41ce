package problems

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gofem1d/fem"
	"github.com/notargets/gofem1d/mesh"
	"github.com/notargets/gofem1d/solver"
)

func TestPoissonUnitLoad(t *testing.T) {
	// The classic worked example: [0,1] in 4 elements, f = 1, zero boundary
	// values. Trapezoid load is exact for constant f, so the nodal values
	// match u(x) = x(1-x)/2 exactly: 3/32 at the quarter points, 1/8 at the
	// midpoint.
	m, err := mesh.New([]float64{0, 0.25, 0.5, 0.75, 1})
	assert.NoError(t, err)
	p := NewPoisson(m, UnitLoad, fem.Trapezoid, solver.Cholesky{})
	res, err := p.Run()
	assert.NoError(t, err)

	// Homogeneous Dirichlet round trip: boundary values exactly zero
	assert.Equal(t, 0.0, res.U.AtVec(0))
	assert.Equal(t, 0.0, res.U.AtVec(4))
	assert.InDelta(t, 3.0/32, res.U.AtVec(1), 1e-14)
	assert.InDelta(t, 1.0/8, res.U.AtVec(2), 1e-14)
	assert.InDelta(t, 3.0/32, res.U.AtVec(3), 1e-14)

	// Nodal exactness makes the node-sampled L2 estimate vanish
	assert.InDelta(t, 0, res.L2, 1e-14)
}

func TestPoissonParallelAssembly(t *testing.T) {
	m, err := mesh.NewUniform(0, 1, 32)
	assert.NoError(t, err)
	p := NewPoisson(m, SineLoad, fem.GaussLegendre2, solver.Cholesky{})
	serial, err := p.Run()
	assert.NoError(t, err)
	p.NumWorkers = 4
	par, err := p.Run()
	assert.NoError(t, err)
	for i := 0; i < m.NumNodes(); i++ {
		assert.Equal(t, serial.U.AtVec(i), par.U.AtVec(i))
	}
}

func TestPoissonCG(t *testing.T) {
	m, err := mesh.NewUniform(0, 1, 16)
	assert.NoError(t, err)
	pd := NewPoisson(m, SineLoad, fem.Trapezoid, solver.Cholesky{})
	direct, err := pd.Run()
	assert.NoError(t, err)
	pc := NewPoisson(m, SineLoad, fem.Trapezoid, &solver.CG{Tol: 1e-12})
	iter, err := pc.Run()
	assert.NoError(t, err)
	for i := 0; i < m.NumNodes(); i++ {
		assert.InDelta(t, direct.U.AtVec(i), iter.U.AtVec(i), 1e-9)
	}
}

func TestPoissonUnconstrained(t *testing.T) {
	// No prescribed DOFs leaves the pure-Laplacian system singular; the
	// pipeline must surface that, never a spurious solution
	m, err := mesh.NewUniform(0, 1, 8)
	assert.NoError(t, err)
	p := NewPoisson(m, UnitLoad, fem.Trapezoid, solver.Cholesky{})
	p.BC = fem.Dirichlet{}
	_, err = p.Run()
	assert.True(t, errors.Is(err, solver.ErrSingularSystem))
}

func TestPoissonRefinedMesh(t *testing.T) {
	// The pipeline runs unchanged on a refined mesh with out-of-order node
	// numbering; boundary values land on the true endpoints
	m, err := mesh.NewUniform(0, 1, 4)
	assert.NoError(t, err)
	r := m.Refine(2)
	p := NewPoisson(r, SineLoad, fem.Trapezoid, solver.Cholesky{})
	res, err := p.Run()
	assert.NoError(t, err)
	for _, b := range r.BoundaryNodes() {
		assert.Equal(t, 0.0, res.U.AtVec(b))
	}
	// Same answer as the equivalent uniform mesh, modulo node numbering
	u16, err := mesh.NewUniform(0, 1, 16)
	assert.NoError(t, err)
	p16 := NewPoisson(u16, SineLoad, fem.Trapezoid, solver.Cholesky{})
	res16, err := p16.Run()
	assert.NoError(t, err)
	sorted, perm := r.SortedCopy()
	Us := res.U.Subset(perm)
	for i := 0; i < sorted.NumNodes(); i++ {
		assert.InDelta(t, res16.U.AtVec(i), Us.AtVec(i), 1e-12)
	}
}

func TestConvergence(t *testing.T) {
	// Doubling the element count must cut the L2 error by about four
	// (quadratic convergence) for the sine case
	samples, err := ConvergenceStudy(SineLoad, 0, 1, []int{4, 8, 16, 32}, fem.Trapezoid, solver.Cholesky{})
	assert.NoError(t, err)
	assert.Equal(t, 4, len(samples))
	PrintStudy(samples)
	for i := 1; i < len(samples); i++ {
		ratio := samples[i-1].L2 / samples[i].L2
		assert.Truef(t, ratio > 3.4 && ratio < 4.6,
			"L2 ratio %v at K=%d outside quadratic range", ratio, samples[i].K)
		assert.InDelta(t, 2, samples[i].Order, 0.25)
	}
}

func TestCaseByName(t *testing.T) {
	c, err := CaseByName("unit")
	assert.NoError(t, err)
	assert.Equal(t, UnitLoad.Name, c.Name)
	c, err = CaseByName("sine")
	assert.NoError(t, err)
	assert.Equal(t, SineLoad.Name, c.Name)
	_, err = CaseByName("cubic")
	assert.Error(t, err)
	// Exact solutions satisfy the homogeneous boundary conditions
	for _, c := range []Case{UnitLoad, SineLoad} {
		assert.InDelta(t, 0, c.Exact(0), 1e-15)
		assert.InDelta(t, 0, c.Exact(1), 1e-15)
	}
}
