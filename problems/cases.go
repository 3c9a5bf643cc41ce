package problems

import (
	"fmt"
	"math"
)

// Case ties a source term to its known exact solution on [0, 1] with
// homogeneous Dirichlet data, for error evaluation and convergence studies.
// Data functions are always passed explicitly, never module state.
type Case struct {
	Name   string
	F      func(x float64) float64 // source term of -u'' = f
	Exact  func(x float64) float64
	DExact func(x float64) float64
}

var (
	// UnitLoad: f = 1, u(x) = x(1-x)/2.
	UnitLoad = Case{
		Name:   "unit",
		F:      func(x float64) float64 { return 1 },
		Exact:  func(x float64) float64 { return 0.5 * x * (1 - x) },
		DExact: func(x float64) float64 { return 0.5 - x },
	}
	// SineLoad: f = pi^2 sin(pi x), u(x) = sin(pi x).
	SineLoad = Case{
		Name:   "sine",
		F:      func(x float64) float64 { return math.Pi * math.Pi * math.Sin(math.Pi*x) },
		Exact:  func(x float64) float64 { return math.Sin(math.Pi * x) },
		DExact: func(x float64) float64 { return math.Pi * math.Cos(math.Pi*x) },
	}
)

func CaseByName(name string) (c Case, err error) {
	switch name {
	case UnitLoad.Name, "":
		c = UnitLoad
	case SineLoad.Name:
		c = SineLoad
	default:
		err = fmt.Errorf("unknown case %q (have %q, %q)", name, UnitLoad.Name, SineLoad.Name)
	}
	return
}
