package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	v := NewVector(3, []float64{1, 2, 3})
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 2.0, v.AtVec(1))

	w := v.Copy().Scale(2)
	assert.Equal(t, 6.0, w.AtVec(2))
	assert.Equal(t, 3.0, v.AtVec(2)) // copy did not alias

	assert.Equal(t, 14.0, v.Dot(v))
	assert.InDelta(t, math.Sqrt(14), v.Norm2(), 1e-15)
	assert.Equal(t, 1.0, v.Min())
	assert.Equal(t, 3.0, v.Max())

	s := v.Subset(Index{2, 0})
	assert.Equal(t, 3.0, s.AtVec(0))
	assert.Equal(t, 1.0, s.AtVec(1))

	u := NewVector(2).AddScalar(1).Apply(func(x float64) float64 { return x * 4 })
	assert.Equal(t, 4.0, u.AtVec(0))
	assert.Equal(t, 4.0, u.AtVec(1))

	assert.True(t, v.AllFinite())
	assert.False(t, NewVector(2, []float64{1, math.NaN()}).AllFinite())

	assert.Panics(t, func() { NewVector(3, []float64{1}) })
}

// The empty vector must be representable: condensing a system with every DOF
// prescribed reduces it to size zero.
func TestVectorEmpty(t *testing.T) {
	e := NewVector(0)
	assert.Equal(t, 0, e.Len())
	r, c := e.Dims()
	assert.Equal(t, 0, r)
	assert.Equal(t, 0, c)
	assert.Empty(t, e.DataP())
	assert.Equal(t, 0.0, e.Norm2())
	assert.Equal(t, 0.0, e.Dot(e))
	assert.True(t, e.AllFinite())
	assert.Equal(t, "[]", e.String())

	s := NewVector(3, []float64{1, 2, 3}).Subset(Index{})
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Copy().Len())
}
