package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gofem1d/InputParameters"
)

func TestBuildProblem(t *testing.T) {
	pp := InputParameters.DefaultProblemParameters()
	p, err := buildProblem(pp)
	assert.NoError(t, err)
	assert.Equal(t, 4, p.Mesh.NumElements())
	assert.Equal(t, "unit", p.Case.Name)
	assert.Equal(t, "trapezoid", p.Quad.Name)
	assert.Equal(t, "cholesky", p.Solver.Name())

	res, err := p.Run()
	assert.NoError(t, err)
	assert.InDelta(t, 1.0/8, res.U.AtVec(2), 1e-14)
}

func TestBuildProblemRefined(t *testing.T) {
	pp := InputParameters.DefaultProblemParameters()
	pp.RefinementLevels = 2
	pp.Solver = "cg"
	pp.Quadrature = "gauss2"
	p, err := buildProblem(pp)
	assert.NoError(t, err)
	assert.Equal(t, 16, p.Mesh.NumElements())
	_, err = p.Run()
	assert.NoError(t, err)
}

func TestBuildProblemRejectsBadInput(t *testing.T) {
	pp := InputParameters.DefaultProblemParameters()
	pp.Case = "quartic"
	_, err := buildProblem(pp)
	assert.Error(t, err)

	pp = InputParameters.DefaultProblemParameters()
	pp.K = 0
	_, err = buildProblem(pp)
	assert.Error(t, err)

	pp = InputParameters.DefaultProblemParameters()
	pp.Solver = "gmres"
	_, err = buildProblem(pp)
	assert.Error(t, err)
}
