package mesh

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMesh(t *testing.T) {
	// Construction validation
	{
		_, err := New([]float64{0})
		assert.True(t, errors.Is(err, ErrInvalidMesh))
		_, err = New([]float64{0, 0.5, 0.5, 1})
		assert.True(t, errors.Is(err, ErrInvalidMesh))
		_, err = New([]float64{0, 0.75, 0.5, 1})
		assert.True(t, errors.Is(err, ErrInvalidMesh))
		_, err = New([]float64{0, math.NaN(), 1})
		assert.True(t, errors.Is(err, ErrInvalidMesh))
		_, err = New([]float64{0, math.Inf(1)})
		assert.True(t, errors.Is(err, ErrInvalidMesh))
		_, err = NewUniform(0, 1, 0)
		assert.True(t, errors.Is(err, ErrInvalidMesh))
		_, err = NewUniform(1, 0, 4)
		assert.True(t, errors.Is(err, ErrInvalidMesh))
	}
	// Node/element bookkeeping on a fresh mesh
	{
		m, err := New([]float64{0, 0.25, 0.5, 0.75, 1})
		assert.NoError(t, err)
		assert.Equal(t, 5, m.NumNodes())
		assert.Equal(t, 4, m.NumElements())
		assert.Equal(t, m.NumElements()+1, m.NumNodes())
		xl, xr := m.Element(2)
		assert.Equal(t, 0.5, xl)
		assert.Equal(t, 0.75, xr)
		assert.Equal(t, [2]int{2, 3}, m.ElementNodes(2))
		assert.Equal(t, 0.25, m.H())
		x0, x1 := m.Bounds()
		assert.Equal(t, 0.0, x0)
		assert.Equal(t, 1.0, x1)
		assert.Equal(t, []int{0, 4}, []int(m.BoundaryNodes()))
	}
	// Uniform constructor hits the endpoints exactly
	{
		m, err := NewUniform(0, 1, 3)
		assert.NoError(t, err)
		assert.Equal(t, 4, m.NumNodes())
		assert.Equal(t, 0.0, m.VX.AtVec(0))
		assert.Equal(t, 1.0, m.VX.AtVec(3))
	}
}

func TestRefine(t *testing.T) {
	m, err := NewUniform(0, 1, 2)
	assert.NoError(t, err)

	r := m.Refine(1)
	// Original mesh untouched
	assert.Equal(t, 3, m.NumNodes())
	assert.Equal(t, 2, m.NumElements())
	// One midpoint per element, appended after the existing nodes
	assert.Equal(t, 5, r.NumNodes())
	assert.Equal(t, 4, r.NumElements())
	assert.Equal(t, 0.25, r.VX.AtVec(3))
	assert.Equal(t, 0.75, r.VX.AtVec(4))
	// Node coordinates are NOT spatially ordered after refinement
	assert.True(t, r.VX.AtVec(3) < r.VX.AtVec(2))
	// Element spans are still positive-length and cover the domain
	total := 0.0
	for e := 0; e < r.NumElements(); e++ {
		xl, xr := r.Element(e)
		assert.True(t, xr > xl)
		total += xr - xl
	}
	assert.InDelta(t, 1.0, total, 1e-15)
	assert.Equal(t, 0.25, r.H())

	// Two levels at once: 2^2 elements per original element
	r2 := m.Refine(2)
	assert.Equal(t, 8, r2.NumElements())
	assert.Equal(t, 9, r2.NumNodes())
	assert.InDelta(t, 0.125, r2.H(), 1e-15)

	// Boundary nodes survive refinement regardless of numbering
	b := r2.BoundaryNodes()
	assert.Equal(t, 2, len(b))
	assert.Equal(t, 0.0, r2.VX.AtVec(b[0]))
	assert.Equal(t, 1.0, r2.VX.AtVec(b[1]))
}

func TestSortedCopy(t *testing.T) {
	m, err := NewUniform(0, 1, 2)
	assert.NoError(t, err)
	r := m.Refine(1)

	s, perm := r.SortedCopy()
	assert.Equal(t, r.NumNodes(), s.NumNodes())
	assert.Equal(t, r.NumElements(), s.NumElements())
	for i := 1; i < s.NumNodes(); i++ {
		assert.True(t, s.VX.AtVec(i) > s.VX.AtVec(i-1))
	}
	// perm maps sorted position -> original node number
	for i := 0; i < s.NumNodes(); i++ {
		assert.Equal(t, r.VX.AtVec(perm[i]), s.VX.AtVec(i))
	}
	// Connectivity still spans the same intervals
	total := 0.0
	for e := 0; e < s.NumElements(); e++ {
		xl, xr := s.Element(e)
		assert.True(t, xr > xl)
		total += xr - xl
	}
	assert.InDelta(t, 1.0, total, 1e-15)
}
