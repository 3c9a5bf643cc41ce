// Package solver provides direct and iterative solvers for the condensed
// symmetric positive-definite systems produced by assembly.
package solver

import (
	"errors"
	"fmt"

	"github.com/notargets/gofem1d/utils"
	"gonum.org/v1/gonum/mat"
)

// ErrSingularSystem indicates the reduced system is singular to working
// precision. The classic trigger is a "floating" system: no DOF prescribed,
// leaving the pure-Laplacian stiffness matrix singular up to a constant.
var ErrSingularSystem = errors.New("solver: system is singular to working precision")

// Interface solves K u = F for the condensed system. A zero-size system is
// legal (every DOF prescribed) and yields an empty solution.
type Interface interface {
	Solve(K utils.CSR, F utils.Vector) (u []float64, err error)
	Name() string
}

// condLimit is the condition-number threshold past which a factorization is
// treated as singular.
const condLimit = 1e12

// Cholesky is the direct solver: densify the reduced matrix into symmetric
// form and factorize. The reduced stiffness matrix of the interior DOFs is
// SPD, so factorization failure (or a hopeless condition number) means the
// system was assembled or condensed into a singular state.
type Cholesky struct{}

func (Cholesky) Name() string { return "cholesky" }

func (Cholesky) Solve(K utils.CSR, F utils.Vector) (u []float64, err error) {
	n := F.Len()
	if n == 0 {
		u = []float64{}
		return
	}
	var chol mat.Cholesky
	if ok := chol.Factorize(K.ToSymDense()); !ok {
		err = fmt.Errorf("%w: Cholesky factorization failed", ErrSingularSystem)
		return
	}
	if cond := chol.Cond(); cond > condLimit {
		err = fmt.Errorf("%w: condition number %.3g exceeds %.1g", ErrSingularSystem, cond, condLimit)
		return
	}
	var x mat.VecDense
	if err = chol.SolveVecTo(&x, F.V); err != nil {
		err = fmt.Errorf("%w: %v", ErrSingularSystem, err)
		return
	}
	u = make([]float64, n)
	copy(u, x.RawVector().Data)
	return
}

// ByName maps a configuration string to a solver.
func ByName(name string, tol float64, maxIter int) (s Interface, err error) {
	switch name {
	case "", Cholesky{}.Name():
		s = Cholesky{}
	case "cg":
		s = &CG{Tol: tol, MaxIter: maxIter}
	default:
		err = fmt.Errorf("unknown solver %q (have %q, %q)", name, "cholesky", "cg")
	}
	return
}
