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
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/gofem1d/fem"
	"github.com/notargets/gofem1d/problems"
	"github.com/notargets/gofem1d/solver"
)

// convergenceCmd represents the convergence command
var convergenceCmd = &cobra.Command{
	Use:   "convergence",
	Short: "Run an error convergence study over a sequence of mesh doublings",
	Long: `
Solves the chosen case on uniform meshes of k, 2k, 4k, ... elements and
reports the L2 error and observed convergence order. P1 elements converge
at second order: each doubling cuts the error by about four.

gofem1d convergence --case sine -k 4 -l 4`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			k, _      = cmd.Flags().GetInt("k")
			levels, _ = cmd.Flags().GetInt("levels")
			xMin, _   = cmd.Flags().GetFloat64("xMin")
			xMax, _   = cmd.Flags().GetFloat64("xMax")
		)
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.ProfilePath(".")).Stop()
		}
		caseName, _ := cmd.Flags().GetString("case")
		quadName, _ := cmd.Flags().GetString("quadrature")
		solverName, _ := cmd.Flags().GetString("solver")
		if err := runConvergence(caseName, quadName, solverName, xMin, xMax, k, levels); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(convergenceCmd)
	convergenceCmd.Flags().IntP("k", "k", 4, "Coarsest mesh element count")
	convergenceCmd.Flags().IntP("levels", "l", 4, "Number of mesh doublings")
	convergenceCmd.Flags().Float64("xMin", 0, "Left domain endpoint")
	convergenceCmd.Flags().Float64("xMax", 1, "Right domain endpoint")
	convergenceCmd.Flags().StringP("case", "c", "sine", "Model case: unit or sine")
	convergenceCmd.Flags().StringP("quadrature", "q", "trapezoid", "Quadrature rule: trapezoid or gauss2")
	convergenceCmd.Flags().StringP("solver", "s", "cholesky", "Linear solver: cholesky or cg")
	convergenceCmd.Flags().Bool("profile", false, "Write a CPU profile for the run")
}

func runConvergence(caseName, quadName, solverName string, xMin, xMax float64, k, levels int) (err error) {
	c, err := problems.CaseByName(caseName)
	if err != nil {
		return
	}
	q, err := fem.QuadratureByName(quadName)
	if err != nil {
		return
	}
	s, err := solver.ByName(solverName, 0, 0)
	if err != nil {
		return
	}
	ks := make([]int, levels)
	for i := range ks {
		ks[i] = k << i
	}
	samples, err := problems.ConvergenceStudy(c, xMin, xMax, ks, q, s)
	if err != nil {
		return
	}
	problems.PrintStudy(samples)
	return
}
