package problems

import (
	"fmt"

	"github.com/notargets/gofem1d/fem"
	"github.com/notargets/gofem1d/mesh"
	"github.com/notargets/gofem1d/solver"
	"github.com/notargets/gofem1d/utils"
	"gonum.org/v1/gonum/mat"
)

// Poisson runs the full pipeline for one case on one mesh:
// assemble -> condense -> solve -> scatter -> evaluate.
type Poisson struct {
	Mesh       *mesh.Mesh
	Case       Case
	Quad       fem.Quadrature
	Solver     solver.Interface
	BC         fem.Dirichlet
	NumWorkers int // > 1 selects parallel assembly
	Verbose    bool
}

// Result is the outcome of one solve. U indexes by mesh node number. The
// error norms are only meaningful against the case's exact solution, which
// assumes homogeneous boundary data.
type Result struct {
	U      utils.Vector
	L2     float64
	H1Semi float64
}

// NewPoisson builds a driver with the default boundary treatment: both
// domain endpoints prescribed to zero.
func NewPoisson(m *mesh.Mesh, c Case, q fem.Quadrature, s solver.Interface) *Poisson {
	return &Poisson{
		Mesh:   m,
		Case:   c,
		Quad:   q,
		Solver: s,
		BC:     fem.Dirichlet{Nodes: m.BoundaryNodes()},
	}
}

func (p *Poisson) Run() (res *Result, err error) {
	var (
		K utils.CSR
		F utils.Vector
	)
	if p.NumWorkers > 1 {
		K, F, err = fem.AssembleParallel(p.Mesh, fem.Laplace{}, fem.Source{F: p.Case.F}, p.Quad, p.NumWorkers)
	} else {
		K, F, err = fem.Assemble(p.Mesh, fem.Laplace{}, fem.Source{F: p.Case.F}, p.Quad)
	}
	if err != nil {
		return
	}
	if p.Verbose {
		fmt.Printf("%v\n", p.Mesh)
		fmt.Printf("K = \n%v\n", mat.Formatted(K, mat.Squeeze()))
		fmt.Printf("F = \n%v\n", mat.Formatted(F, mat.Squeeze()))
	}
	cond, err := fem.Condense(K, F, p.BC)
	if err != nil {
		return
	}
	u, err := p.Solver.Solve(cond.KII, cond.FI)
	if err != nil {
		return
	}
	U := cond.ScatterFull(u)
	res = &Result{
		U:      U,
		L2:     fem.L2Error(p.Mesh, U, p.Case.Exact),
		H1Semi: fem.H1SemiError(p.Mesh, U, p.Case.DExact),
	}
	if p.Verbose {
		fmt.Printf("U = \n%v\n", mat.Formatted(U, mat.Squeeze()))
		fmt.Printf("L2 error = %12.6e, H1 seminorm error = %12.6e\n", res.L2, res.H1Semi)
	}
	return
}
