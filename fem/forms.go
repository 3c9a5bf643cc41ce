package fem

import "errors"

var (
	// ErrDegenerateElement indicates a zero or negative length element
	// reached the local kernel.
	ErrDegenerateElement = errors.New("fem: degenerate element")
	// ErrIndexOutOfRange indicates a prescribed DOF outside [0, n].
	ErrIndexOutOfRange = errors.New("fem: DOF index out of range")
	// ErrInconsistentPartition indicates a malformed free/prescribed split:
	// duplicate prescribed indices or a values/indices length mismatch.
	ErrInconsistentPartition = errors.New("fem: inconsistent DOF partition")
)

// FormInput carries the local basis data at one quadrature point. Trial
// fields are only populated for bilinear evaluation; U and DU carry the
// discrete solution and are only populated for functional evaluation.
type FormInput struct {
	X      float64 // physical coordinate of the quadrature point
	Trial  float64 // trial basis value
	DTrial float64 // trial basis x-derivative
	Test   float64 // test basis value
	DTest  float64 // test basis x-derivative
	U      float64 // discrete solution value
	DU     float64 // discrete solution x-derivative
}

// The three operation kinds the assembler and evaluator dispatch on.
// A BilinearForm consumes a (trial, test) pair and lands in the global
// matrix; a LinearForm consumes only a test function and lands in the load
// vector; a Functional consumes only quadrature context plus the discrete
// solution and reduces to a scalar.
type BilinearForm interface {
	Bilinear(p *FormInput) float64
}

type LinearForm interface {
	Linear(p *FormInput) float64
}

type Functional interface {
	Value(p *FormInput) float64
}

// Laplace is the stiffness form grad(u) . grad(v).
type Laplace struct{}

func (Laplace) Bilinear(p *FormInput) float64 { return p.DTrial * p.DTest }

// Mass is the form u * v.
type Mass struct{}

func (Mass) Bilinear(p *FormInput) float64 { return p.Trial * p.Test }

// Source is the load form f(x) * v. F is passed explicitly; forms never
// capture ambient state.
type Source struct {
	F func(x float64) float64
}

func (s Source) Linear(p *FormInput) float64 { return s.F(p.X) * p.Test }

// SquaredError is the functional (u_h - u_exact)^2, integrated to produce
// the L2 error.
type SquaredError struct {
	Exact func(x float64) float64
}

func (f SquaredError) Value(p *FormInput) float64 {
	d := p.U - f.Exact(p.X)
	return d * d
}

// SquaredGradError is the functional (u_h' - u_exact')^2 behind the
// H1 seminorm error.
type SquaredGradError struct {
	DExact func(x float64) float64
}

func (f SquaredGradError) Value(p *FormInput) float64 {
	d := p.DU - f.DExact(p.X)
	return d * d
}
