package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Vector wraps a gonum VecDense with the chainable operations used by the
// assembly and evaluation code.
type Vector struct {
	V *mat.VecDense
}

// NewVector allocates an N-vector, optionally around existing data. N = 0 is
// legal and yields the empty vector (nil VecDense, since gonum refuses
// zero-length allocations); a fully prescribed condensation produces one.
func NewVector(N int, dataO ...[]float64) (R Vector) {
	var v *mat.VecDense
	if len(dataO) != 0 && len(dataO[0]) != N {
		err := fmt.Errorf("mismatch in allocation: NewVector N = %v, len(data[0]) = %v", N, len(dataO[0]))
		panic(err)
	}
	if N == 0 {
		return
	}
	if len(dataO) != 0 {
		v = mat.NewVecDense(N, dataO[0])
	} else {
		v = mat.NewVecDense(N, make([]float64, N))
	}
	R = Vector{v}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int) {
	if v.V == nil {
		return 0, 0
	}
	return v.V.Dims()
}
func (v Vector) At(i, j int) float64 { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix       { return v.V.T() }
func (v Vector) AtVec(i int) float64 { return v.V.AtVec(i) }

func (v Vector) Len() int {
	if v.V == nil {
		return 0
	}
	return v.V.Len()
}

func (v Vector) RawVector() blas64.Vector {
	if v.V == nil {
		return blas64.Vector{}
	}
	return v.V.RawVector()
}

func (v Vector) DataP() []float64 { return v.RawVector().Data }

// Chainable methods
func (v Vector) Set(i int, val float64) Vector { // Changes receiver
	v.V.SetVec(i, val)
	return v
}

func (v Vector) Copy() (R Vector) { // Does not change receiver
	var (
		data  = v.DataP()
		dataR = make([]float64, len(data))
	)
	copy(dataR, data)
	R = NewVector(v.Len(), dataR)
	return
}

func (v Vector) Scale(a float64) Vector { // Changes receiver
	var (
		data = v.DataP()
	)
	for i := range data {
		data[i] *= a
	}
	return v
}

func (v Vector) AddScalar(a float64) Vector { // Changes receiver
	var (
		data = v.DataP()
	)
	for i := range data {
		data[i] += a
	}
	return v
}

func (v Vector) Add(a Vector) Vector { // Changes receiver
	v.V.AddVec(v.V, a.V)
	return v
}

func (v Vector) Subtract(a Vector) Vector { // Changes receiver
	v.V.SubVec(v.V, a.V)
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector { // Changes receiver
	var (
		data = v.DataP()
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

// Subset gathers v at the positions listed in I.
func (v Vector) Subset(I Index) (R Vector) { // Does not change receiver
	var (
		data = make([]float64, len(I))
	)
	for i, ind := range I {
		data[i] = v.AtVec(ind)
	}
	R = NewVector(len(I), data)
	return
}

func (v Vector) Dot(a Vector) (val float64) {
	if v.V == nil {
		return 0
	}
	return mat.Dot(v.V, a.V)
}

func (v Vector) Norm2() (val float64) {
	if v.V == nil {
		return 0
	}
	return mat.Norm(v.V, 2)
}

func (v Vector) Min() (min float64) {
	var (
		data = v.DataP()
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	var (
		data = v.DataP()
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

func (v Vector) AllFinite() bool {
	for _, val := range v.DataP() {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return false
		}
	}
	return true
}

func (v Vector) String() string {
	if v.V == nil {
		return "[]"
	}
	return fmt.Sprintf("%v", mat.Formatted(v.V, mat.Squeeze()))
}
