package fem

import (
	"runtime"
	"sync"

	"github.com/notargets/gofem1d/mesh"
	"github.com/notargets/gofem1d/utils"
)

// Assemble builds the global (n+1)x(n+1) stiffness matrix and length-(n+1)
// load vector for a bilinear/linear form pair over the mesh. Every element's
// 2x2 and 2x1 local contributions are scatter-added at its two global node
// numbers, so entries shared by adjacent elements accumulate. The global
// matrix is O(n) nonzero (tridiagonal for a spatially ordered P1 mesh) and
// is returned in compressed-row form.
func Assemble(m *mesh.Mesh, a BilinearForm, l LinearForm, q Quadrature) (K utils.CSR, F utils.Vector, err error) {
	var (
		nv  = m.NumNodes()
		dok = utils.NewDOK(nv, nv)
	)
	F = utils.NewVector(nv)
	for e := 0; e < m.NumElements(); e++ {
		var (
			ke [2][2]float64
			fe [2]float64
		)
		xl, xr := m.Element(e)
		if ke, err = LocalStiffness(xl, xr, a, q); err != nil {
			return
		}
		if fe, err = LocalLoad(xl, xr, l, q); err != nil {
			return
		}
		ix := m.ElementNodes(e)
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				dok.AddAt(ix[i], ix[j], ke[i][j])
			}
			F.Set(ix[i], F.AtVec(ix[i])+fe[i])
		}
	}
	K = dok.ToCSR()
	return
}

// triplet is one local contribution destined for a global matrix entry.
type triplet struct {
	i, j int
	val  float64
}

// AssembleParallel computes local contributions concurrently and reduces
// them deterministically. Each worker owns a contiguous chunk of elements
// and emits a triplet list; the single-threaded reduction then scatter-adds
// chunk by chunk in element order, so the result is bitwise identical to the
// serial path regardless of scheduling. np < 1 selects GOMAXPROCS workers.
func AssembleParallel(m *mesh.Mesh, a BilinearForm, l LinearForm, q Quadrature, np int) (K utils.CSR, F utils.Vector, err error) {
	var (
		nv = m.NumNodes()
		ne = m.NumElements()
	)
	if np < 1 {
		np = runtime.GOMAXPROCS(0)
	}
	if np > ne {
		np = ne
	}
	var (
		wg       sync.WaitGroup
		chunks   = utils.SplitRange(ne, np)
		trips    = make([][]triplet, np)
		loads    = make([][]float64, np)
		workErrs = make([]error, np)
	)
	for n := 0; n < np; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			var (
				lo, hi = chunks[n], chunks[n+1]
				tl     = make([]triplet, 0, 4*(hi-lo))
				fl     = make([]float64, nv)
			)
			for e := lo; e < hi; e++ {
				xl, xr := m.Element(e)
				ke, kerr := LocalStiffness(xl, xr, a, q)
				if kerr != nil {
					workErrs[n] = kerr
					return
				}
				fe, ferr := LocalLoad(xl, xr, l, q)
				if ferr != nil {
					workErrs[n] = ferr
					return
				}
				ix := m.ElementNodes(e)
				for i := 0; i < 2; i++ {
					for j := 0; j < 2; j++ {
						tl = append(tl, triplet{ix[i], ix[j], ke[i][j]})
					}
					fl[ix[i]] += fe[i]
				}
			}
			trips[n] = tl
			loads[n] = fl
		}(n)
	}
	wg.Wait()
	for _, werr := range workErrs {
		if werr != nil {
			err = werr
			return
		}
	}
	dok := utils.NewDOK(nv, nv)
	F = utils.NewVector(nv)
	for n := 0; n < np; n++ {
		for _, t := range trips[n] {
			dok.AddAt(t.i, t.j, t.val)
		}
		for i, val := range loads[n] {
			if val != 0 {
				F.Set(i, F.AtVec(i)+val)
			}
		}
	}
	K = dok.ToCSR()
	return
}
