package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML problem definition file
type ProblemParameters struct {
	Title            string             `yaml:"Title"`
	XMin             float64            `yaml:"XMin"`
	XMax             float64            `yaml:"XMax"`
	K                int                `yaml:"K"` // Number of elements
	Case             string             `yaml:"Case"`
	Quadrature       string             `yaml:"Quadrature"`
	Solver           string             `yaml:"Solver"`
	CGTolerance      float64            `yaml:"CGTolerance"`
	CGMaxIterations  int                `yaml:"CGMaxIterations"`
	RefinementLevels int                `yaml:"RefinementLevels"`
	NumWorkers       int                `yaml:"NumWorkers"`
	BCs              map[string]float64 `yaml:"BCs"` // Key is boundary name ("Left"/"Right"), value is prescribed u
}

// DefaultProblemParameters covers the classic worked example: unit load on
// [0, 1] with four elements and zero boundary values.
func DefaultProblemParameters() *ProblemParameters {
	return &ProblemParameters{
		Title:      "Unit load on the unit interval",
		XMin:       0,
		XMax:       1,
		K:          4,
		Case:       "unit",
		Quadrature: "trapezoid",
		Solver:     "cholesky",
	}
}

func (pp *ProblemParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, pp)
}

func (pp *ProblemParameters) Validate() error {
	if pp.K < 1 {
		return fmt.Errorf("K must be at least 1, have %d", pp.K)
	}
	if pp.XMax <= pp.XMin {
		return fmt.Errorf("domain [%v, %v] is empty", pp.XMin, pp.XMax)
	}
	if pp.RefinementLevels < 0 {
		return fmt.Errorf("RefinementLevels must be non-negative, have %d", pp.RefinementLevels)
	}
	return nil
}

func (pp *ProblemParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", pp.Title)
	fmt.Printf("[%8.5f, %8.5f]\t= Domain\n", pp.XMin, pp.XMax)
	fmt.Printf("[%d]\t\t\t\t= K (number of elements)\n", pp.K)
	fmt.Printf("[%s]\t\t\t= Case\n", pp.Case)
	fmt.Printf("[%s]\t\t= Quadrature\n", pp.Quadrature)
	fmt.Printf("[%s]\t\t= Solver\n", pp.Solver)
	if pp.RefinementLevels > 0 {
		fmt.Printf("[%d]\t\t\t\t= Refinement Levels\n", pp.RefinementLevels)
	}
	keys := make([]string, len(pp.BCs))
	i := 0
	for k := range pp.BCs {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("BCs[%s] = %v\n", key, pp.BCs[key])
	}
}
