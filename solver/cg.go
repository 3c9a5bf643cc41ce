package solver

import (
	"fmt"
	"math"

	"github.com/notargets/gofem1d/utils"
)

// CG is an unpreconditioned conjugate-gradient solver over the sparse
// compressed-row operator, the alternative to direct factorization for large
// systems. It converges when the relative residual ||r|| / ||F|| drops below
// Tol; exceeding MaxIter or encountering non-positive curvature (the operator
// is not SPD) reports a singular system.
type CG struct {
	Tol     float64 // relative residual target, default 1e-10
	MaxIter int     // default 10 * n
}

func (*CG) Name() string { return "cg" }

func (s *CG) Solve(K utils.CSR, F utils.Vector) (u []float64, err error) {
	var (
		n       = F.Len()
		tol     = s.Tol
		maxIter = s.MaxIter
	)
	if n == 0 {
		u = []float64{}
		return
	}
	if tol <= 0 {
		tol = 1e-10
	}
	if maxIter <= 0 {
		maxIter = 10 * n
	}
	var (
		x     = utils.NewVector(n)
		r     = F.Copy()
		p     = r.Copy()
		bnorm = F.Norm2()
	)
	if bnorm == 0 {
		u = x.DataP()
		return
	}
	rsold := r.Dot(r)
	for iter := 0; iter < maxIter; iter++ {
		ap := K.MulVec(p)
		curv := p.Dot(ap)
		if curv <= 0 || math.IsNaN(curv) {
			err = fmt.Errorf("%w: non-positive curvature in CG at iteration %d", ErrSingularSystem, iter)
			return
		}
		alpha := rsold / curv
		x.Add(p.Copy().Scale(alpha))
		r.Subtract(ap.Scale(alpha))
		rsnew := r.Dot(r)
		if math.Sqrt(rsnew)/bnorm < tol {
			u = x.DataP()
			return
		}
		p = r.Copy().Add(p.Scale(rsnew / rsold))
		rsold = rsnew
	}
	err = fmt.Errorf("%w: CG did not reach tolerance %g in %d iterations", ErrSingularSystem, tol, maxIter)
	return
}
