/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/gofem1d/InputParameters"
	"github.com/notargets/gofem1d/fem"
	"github.com/notargets/gofem1d/mesh"
	"github.com/notargets/gofem1d/problems"
	"github.com/notargets/gofem1d/solver"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Assemble and solve one Poisson problem",
	Long: `
Assembles the global stiffness matrix and load vector for the chosen case,
condenses the boundary DOFs, solves the reduced system and reports the
solution and error norms.

gofem1d solve -k 8 --case sine --quadrature gauss2`,
	Run: func(cmd *cobra.Command, args []string) {
		pp := paramsFromFlags(cmd)
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.ProfilePath(".")).Stop()
		}
		if err := runSolve(pp); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntP("k", "k", 4, "Number of elements in the mesh")
	solveCmd.Flags().Float64("xMin", 0, "Left domain endpoint")
	solveCmd.Flags().Float64("xMax", 1, "Right domain endpoint")
	solveCmd.Flags().StringP("case", "c", "unit", "Model case: unit = f(x)=1, sine = f(x)=pi^2 sin(pi x)")
	solveCmd.Flags().StringP("quadrature", "q", "trapezoid", "Quadrature rule: trapezoid or gauss2")
	solveCmd.Flags().StringP("solver", "s", "cholesky", "Linear solver: cholesky or cg")
	solveCmd.Flags().Float64("cgTol", 1e-10, "CG relative residual tolerance")
	solveCmd.Flags().Int("cgMaxIter", 0, "CG iteration limit, 0 = 10x system size")
	solveCmd.Flags().IntP("refine", "r", 0, "Midpoint refinement levels applied before solving")
	solveCmd.Flags().Int("workers", 1, "Parallel assembly workers, 1 = serial")
	solveCmd.Flags().StringP("paramsFile", "I", "", "YAML problem parameters file (overrides other flags)")
	solveCmd.Flags().Bool("profile", false, "Write a CPU profile for the run")
}

func paramsFromFlags(cmd *cobra.Command) (pp *InputParameters.ProblemParameters) {
	if file, _ := cmd.Flags().GetString("paramsFile"); len(file) != 0 {
		data, err := ioutil.ReadFile(file)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		pp = InputParameters.DefaultProblemParameters()
		if err = pp.Parse(data); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		return
	}
	pp = InputParameters.DefaultProblemParameters()
	pp.K, _ = cmd.Flags().GetInt("k")
	pp.XMin, _ = cmd.Flags().GetFloat64("xMin")
	pp.XMax, _ = cmd.Flags().GetFloat64("xMax")
	pp.Case, _ = cmd.Flags().GetString("case")
	pp.Quadrature, _ = cmd.Flags().GetString("quadrature")
	pp.Solver, _ = cmd.Flags().GetString("solver")
	pp.CGTolerance, _ = cmd.Flags().GetFloat64("cgTol")
	pp.CGMaxIterations, _ = cmd.Flags().GetInt("cgMaxIter")
	pp.RefinementLevels, _ = cmd.Flags().GetInt("refine")
	pp.NumWorkers, _ = cmd.Flags().GetInt("workers")
	return
}

func buildProblem(pp *InputParameters.ProblemParameters) (p *problems.Poisson, err error) {
	if err = pp.Validate(); err != nil {
		return
	}
	m, err := mesh.NewUniform(pp.XMin, pp.XMax, pp.K)
	if err != nil {
		return
	}
	if pp.RefinementLevels > 0 {
		m = m.Refine(pp.RefinementLevels)
	}
	c, err := problems.CaseByName(pp.Case)
	if err != nil {
		return
	}
	q, err := fem.QuadratureByName(pp.Quadrature)
	if err != nil {
		return
	}
	s, err := solver.ByName(pp.Solver, pp.CGTolerance, pp.CGMaxIterations)
	if err != nil {
		return
	}
	p = problems.NewPoisson(m, c, q, s)
	p.NumWorkers = pp.NumWorkers
	if len(pp.BCs) != 0 {
		p.BC = boundaryFromParams(m, pp.BCs)
	}
	return
}

// boundaryFromParams maps named boundary values onto the mesh's boundary
// nodes. The boundary node list is in increasing node order, so "Left" is
// the first entry and "Right" the last.
func boundaryFromParams(m *mesh.Mesh, bcs map[string]float64) (bc fem.Dirichlet) {
	nodes := m.BoundaryNodes()
	vals := make([]float64, len(nodes))
	if v, ok := bcs["Left"]; ok {
		vals[0] = v
	}
	if v, ok := bcs["Right"]; ok {
		vals[len(vals)-1] = v
	}
	bc = fem.Dirichlet{Nodes: nodes, Values: vals}
	return
}

func runSolve(pp *InputParameters.ProblemParameters) (err error) {
	pp.Print()
	p, err := buildProblem(pp)
	if err != nil {
		return
	}
	p.Verbose = true
	_, err = p.Run()
	return
}
