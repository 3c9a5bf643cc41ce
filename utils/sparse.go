package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// DOK is an accumulating sparse matrix used during global assembly. AddAt is
// the scatter-add primitive: entries shared between adjacent elements receive
// multiple contributions, which must sum.
type DOK struct {
	M *sparse.DOK
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{sparse.NewDOK(nr, nc)}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }

func (m DOK) Set(i, j int, val float64) {
	m.M.Set(i, j, val)
}

// AddAt accumulates val into entry (i, j). Contributions commute under
// addition, so callers may scatter in any element order.
func (m DOK) AddAt(i, j int, val float64) {
	m.M.Set(i, j, m.M.At(i, j)+val)
}

func (m DOK) NNZ() int { return m.M.NNZ() }

func (m DOK) ToCSR() CSR {
	return CSR{m.M.ToCSR()}
}

// CSR is the compressed-row form handed to solvers and consumers after
// assembly is complete.
type CSR struct {
	M *sparse.CSR
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)    { return m.M.Dims() }
func (m CSR) At(i, j int) float64 { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix       { return m.M.T() }

func (m CSR) NNZ() int { return m.M.NNZ() }

// Subset extracts the submatrix with rows RI and columns CI, preserving the
// order of the supplied index lists. Index lists must be duplicate-free.
// Cost is O(nnz), not O(len(RI)*len(CI)): only stored entries are visited.
func (m CSR) Subset(RI, CI Index) (R CSR) {
	var (
		nr, nc = m.Dims()
		rmap   = make(map[int]int, len(RI))
		cmap   = make(map[int]int, len(CI))
		out    = NewDOK(len(RI), len(CI))
	)
	for i, ri := range RI {
		if ri < 0 || ri > nr-1 {
			panic(fmt.Errorf("row index out of bounds: index = %d, max_bounds = %d", ri, nr-1))
		}
		rmap[ri] = i
	}
	for j, ci := range CI {
		if ci < 0 || ci > nc-1 {
			panic(fmt.Errorf("column index out of bounds: index = %d, max_bounds = %d", ci, nc-1))
		}
		cmap[ci] = j
	}
	m.M.DoNonZero(func(i, j int, val float64) {
		if ii, ok := rmap[i]; ok {
			if jj, ok := cmap[j]; ok {
				out.Set(ii, jj, val)
			}
		}
	})
	R = out.ToCSR()
	return
}

// MulVec computes R = M * v.
func (m CSR) MulVec(v Vector) (R Vector) {
	var (
		nr, nc = m.Dims()
	)
	if nc != v.Len() {
		panic(fmt.Errorf("dimension mismatch in MulVec: nc = %d, len(v) = %d", nc, v.Len()))
	}
	R = NewVector(nr)
	m.M.DoNonZero(func(i, j int, val float64) {
		R.V.SetVec(i, R.AtVec(i)+val*v.AtVec(j))
	})
	return
}

// ToSymDense densifies into a gonum symmetric matrix for direct
// factorization, reading the upper triangle. Panics if the matrix is not
// square; symmetry is the caller's obligation (check with IsSymmetric).
func (m CSR) ToSymDense() (R *mat.SymDense) {
	var (
		nr, nc = m.Dims()
	)
	if nr != nc {
		panic(fmt.Errorf("cannot convert a %dx%d matrix to symmetric form", nr, nc))
	}
	R = mat.NewSymDense(nr, nil)
	m.M.DoNonZero(func(i, j int, val float64) {
		if i <= j {
			R.SetSym(i, j, val)
		}
	})
	return
}

// IsSymmetric reports symmetry to within tol on every stored entry.
func (m CSR) IsSymmetric(tol float64) bool {
	var (
		nr, nc = m.Dims()
		sym    = true
	)
	if nr != nc {
		return false
	}
	m.M.DoNonZero(func(i, j int, val float64) {
		if diff := val - m.At(j, i); diff > tol || diff < -tol {
			sym = false
		}
	})
	return sym
}

func (m CSR) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.M, mat.Squeeze()))
}
