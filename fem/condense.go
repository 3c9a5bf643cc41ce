package fem

import (
	"fmt"

	"github.com/notargets/gofem1d/utils"
)

// Dirichlet prescribes solution values at a set of DOFs. Values of nil means
// homogeneous (all zero); otherwise Values[k] is prescribed at Nodes[k].
type Dirichlet struct {
	Nodes  utils.Index
	Values []float64
}

// value returns the prescribed value at position k of the node list.
func (bc Dirichlet) value(k int) float64 {
	if bc.Values == nil {
		return 0
	}
	return bc.Values[k]
}

// Condensed is a reduced linear system together with the bookkeeping needed
// to reconstruct the full solution. Free holds the unconstrained DOFs in
// strictly increasing order; row/column k of KII corresponds to Free[k].
type Condensed struct {
	KII       utils.CSR
	FI        utils.Vector
	Free      utils.Index
	Fixed     utils.Index
	FixedVals []float64
	size      int // full system size
}

// Condense splits the DOFs of K, F into free and prescribed sets, restricts
// the system to the free set, and applies the right-hand-side correction
// F_I - K_ID * g_D for nonzero prescribed values. Assembly always treats
// boundary DOFs uniformly; this is a pure index-partition post-process.
//
// An empty prescription is legal and returns the full system (the caller's
// solve will then reject it if it is singular). Prescribing every DOF is also
// legal: the reduced system is empty and the full solution is exactly g.
func Condense(K utils.CSR, F utils.Vector, bc Dirichlet) (c *Condensed, err error) {
	var (
		n = F.Len()
	)
	if nr, nc := K.Dims(); nr != n || nc != n {
		err = fmt.Errorf("%w: matrix is %dx%d but load vector has %d entries",
			ErrInconsistentPartition, nr, nc, n)
		return
	}
	if bc.Values != nil && len(bc.Values) != len(bc.Nodes) {
		err = fmt.Errorf("%w: %d prescribed values for %d prescribed nodes",
			ErrInconsistentPartition, len(bc.Values), len(bc.Nodes))
		return
	}
	for _, d := range bc.Nodes {
		if d < 0 || d > n-1 {
			err = fmt.Errorf("%w: prescribed DOF %d outside [0, %d]", ErrIndexOutOfRange, d, n-1)
			return
		}
	}
	if bc.Nodes.HasDuplicates() {
		err = fmt.Errorf("%w: duplicate prescribed DOF", ErrInconsistentPartition)
		return
	}
	var (
		fixed = bc.Nodes.Copy()
		gD    = make([]float64, len(bc.Nodes))
		free  = bc.Nodes.Complement(n)
	)
	for k := range bc.Nodes {
		gD[k] = bc.value(k)
	}
	c = &Condensed{
		KII:       K.Subset(free, free),
		FI:        F.Subset(free),
		Free:      free,
		Fixed:     fixed,
		FixedVals: gD,
		size:      n,
	}
	// RHS correction: FI -= K_ID * g_D. Skipped entirely for homogeneous
	// data, where the correction is zero.
	for k, d := range fixed {
		if gD[k] == 0 {
			continue
		}
		for i, fi := range free {
			if kid := K.At(fi, d); kid != 0 {
				c.FI.Set(i, c.FI.AtVec(i)-kid*gD[k])
			}
		}
	}
	return
}

// NumFree returns the reduced system size.
func (c *Condensed) NumFree() int { return len(c.Free) }

// FullSize returns the DOF count of the original system.
func (c *Condensed) FullSize() int { return c.size }

// ScatterFull rebuilds the full solution vector from the reduced solution u,
// placing u[k] at Free[k] and the prescribed values at their DOFs. The
// natural increasing order of Free established by Condense is what makes
// this scatter unambiguous.
func (c *Condensed) ScatterFull(u []float64) (U utils.Vector) {
	if len(u) != len(c.Free) {
		panic(fmt.Errorf("reduced solution has %d entries, want %d", len(u), len(c.Free)))
	}
	U = utils.NewVector(c.size)
	for k, i := range c.Free {
		U.Set(i, u[k])
	}
	for k, d := range c.Fixed {
		U.Set(d, c.FixedVals[k])
	}
	return
}
