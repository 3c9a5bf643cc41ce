package mesh

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/notargets/gofem1d/utils"
)

var (
	// ErrInvalidMesh indicates bad node coordinates: fewer than two nodes,
	// non-finite values, or a sequence that is not strictly increasing.
	ErrInvalidMesh = errors.New("mesh: invalid node coordinates")
)

// Mesh is a partition of a 1-D interval into line elements. Node coordinates
// are stored in VX, one DOF per node, and EToV maps each element to its
// [left, right] vertex numbers.
//
// A freshly constructed mesh numbers nodes in spatial order, so element e
// spans nodes {e, e+1}. A refined mesh appends inserted nodes after the
// existing ones, so its node numbering is NOT spatially ordered; consumers
// that need adjacency in coordinate order must go through SortedCopy.
type Mesh struct {
	VX   utils.Vector
	EToV [][2]int
}

// New validates coords and builds a mesh. Coordinates must be finite,
// strictly increasing, and at least two.
func New(coords []float64) (m *Mesh, err error) {
	if len(coords) < 2 {
		err = fmt.Errorf("%w: need at least 2 nodes, have %d", ErrInvalidMesh, len(coords))
		return
	}
	for i, x := range coords {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			err = fmt.Errorf("%w: non-finite coordinate %v at node %d", ErrInvalidMesh, x, i)
			return
		}
		if i > 0 && x <= coords[i-1] {
			err = fmt.Errorf("%w: coordinates not strictly increasing at node %d (%v <= %v)",
				ErrInvalidMesh, i, x, coords[i-1])
			return
		}
	}
	var (
		nv   = len(coords)
		vx   = make([]float64, nv)
		etov = make([][2]int, nv-1)
	)
	copy(vx, coords)
	for e := range etov {
		etov[e] = [2]int{e, e + 1}
	}
	m = &Mesh{
		VX:   utils.NewVector(nv, vx),
		EToV: etov,
	}
	return
}

// NewUniform partitions [x0, x1] into k equal elements.
func NewUniform(x0, x1 float64, k int) (m *Mesh, err error) {
	if k < 1 {
		err = fmt.Errorf("%w: need at least 1 element, have %d", ErrInvalidMesh, k)
		return
	}
	if math.IsNaN(x0) || math.IsInf(x0, 0) || math.IsNaN(x1) || math.IsInf(x1, 0) || x1 <= x0 {
		err = fmt.Errorf("%w: bad interval [%v, %v]", ErrInvalidMesh, x0, x1)
		return
	}
	coords := make([]float64, k+1)
	h := (x1 - x0) / float64(k)
	for i := range coords {
		coords[i] = x0 + float64(i)*h
	}
	coords[k] = x1
	return New(coords)
}

func (m *Mesh) NumNodes() int    { return m.VX.Len() }
func (m *Mesh) NumElements() int { return len(m.EToV) }

// Element returns the endpoint coordinates of element e, left then right.
func (m *Mesh) Element(e int) (xl, xr float64) {
	nodes := m.EToV[e]
	xl, xr = m.VX.AtVec(nodes[0]), m.VX.AtVec(nodes[1])
	return
}

// ElementNodes returns the global node (DOF) numbers of element e.
func (m *Mesh) ElementNodes(e int) [2]int {
	return m.EToV[e]
}

// H returns the largest element length.
func (m *Mesh) H() (h float64) {
	for e := range m.EToV {
		xl, xr := m.Element(e)
		if dx := xr - xl; dx > h {
			h = dx
		}
	}
	return
}

// Bounds returns the domain endpoints.
func (m *Mesh) Bounds() (x0, x1 float64) {
	x0, x1 = math.Inf(1), math.Inf(-1)
	for i := 0; i < m.VX.Len(); i++ {
		x := m.VX.AtVec(i)
		if x < x0 {
			x0 = x
		}
		if x > x1 {
			x1 = x
		}
	}
	return
}

// BoundaryNodes returns the nodes referenced by exactly one element, in
// increasing node-number order. For a fresh interval mesh this is {0, n}.
func (m *Mesh) BoundaryNodes() (I utils.Index) {
	counts := make([]int, m.NumNodes())
	for _, nodes := range m.EToV {
		counts[nodes[0]]++
		counts[nodes[1]]++
	}
	for i, c := range counts {
		if c == 1 {
			I = append(I, i)
		}
	}
	return
}

// Refine performs `levels` rounds of midpoint insertion, each round splitting
// every element in two. The receiver is never mutated: existing solutions and
// DOF numbering keep indexing into the old mesh. Inserted nodes are appended
// after the existing ones, so the refined mesh's node coordinates are not in
// spatial order.
func (m *Mesh) Refine(levels int) (r *Mesh) {
	r = m
	for lev := 0; lev < levels; lev++ {
		r = r.refineOnce()
	}
	return
}

func (m *Mesh) refineOnce() (r *Mesh) {
	var (
		nv   = m.NumNodes()
		ne   = m.NumElements()
		vx   = make([]float64, nv, nv+ne)
		etov = make([][2]int, 0, 2*ne)
	)
	for i := 0; i < nv; i++ {
		vx[i] = m.VX.AtVec(i)
	}
	for e := 0; e < ne; e++ {
		nodes := m.EToV[e]
		xl, xr := m.Element(e)
		mid := len(vx)
		vx = append(vx, 0.5*(xl+xr))
		etov = append(etov, [2]int{nodes[0], mid}, [2]int{mid, nodes[1]})
	}
	r = &Mesh{
		VX:   utils.NewVector(len(vx), vx),
		EToV: etov,
	}
	return
}

// SortedCopy returns an equivalent mesh with nodes renumbered into spatial
// order, plus the permutation perm such that sorted node i is original node
// perm[i]. Solution vectors over the original mesh are reordered with
// U.Subset(perm).
func (m *Mesh) SortedCopy() (r *Mesh, perm utils.Index) {
	var (
		nv = m.NumNodes()
	)
	perm = utils.NewRange(0, nv-1)
	sort.Slice(perm, func(i, j int) bool {
		return m.VX.AtVec(perm[i]) < m.VX.AtVec(perm[j])
	})
	inv := utils.NewIndex(nv)
	for newID, oldID := range perm {
		inv[oldID] = newID
	}
	vx := make([]float64, nv)
	for newID, oldID := range perm {
		vx[newID] = m.VX.AtVec(oldID)
	}
	etov := make([][2]int, m.NumElements())
	for e, nodes := range m.EToV {
		etov[e] = [2]int{inv[nodes[0]], inv[nodes[1]]}
	}
	r = &Mesh{
		VX:   utils.NewVector(nv, vx),
		EToV: etov,
	}
	return
}

func (m *Mesh) String() string {
	x0, x1 := m.Bounds()
	return fmt.Sprintf("mesh [%g, %g]: %d nodes, %d elements, h = %g",
		x0, x1, m.NumNodes(), m.NumElements(), m.H())
}
