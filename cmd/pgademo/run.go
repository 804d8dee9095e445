package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/pga3d"
	"github.com/gogpu/pga3d/batch"
)

// Result is the printed outcome of a scenario.
type Result struct {
	Name        string        `json:"name" yaml:"name"`
	Motor       MotorOutput   `json:"motor" yaml:"motor"`
	Translation [3]float64    `json:"translation" yaml:"translation,flow"`
	Points      []PointOutput `json:"points" yaml:"points"`
}

// MotorOutput holds the eight motor components in field order.
type MotorOutput struct {
	VX float64 `json:"vx" yaml:"vx"`
	VY float64 `json:"vy" yaml:"vy"`
	VZ float64 `json:"vz" yaml:"vz"`
	VW float64 `json:"vw" yaml:"vw"`
	MX float64 `json:"mx" yaml:"mx"`
	MY float64 `json:"my" yaml:"my"`
	MZ float64 `json:"mz" yaml:"mz"`
	MW float64 `json:"mw" yaml:"mw"`
}

// PointOutput pairs an input position with its image.
type PointOutput struct {
	In  [3]float64 `json:"in" yaml:"in,flow"`
	Out [3]float64 `json:"out" yaml:"out,flow"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a motion scenario",
		Long: `Run combines the steps of a scenario into one motor and applies it
to every listed point.

Steps are applied in the order they are listed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(rootOpts, args[0], cmd.OutOrStdout())
		},
	}
}

func runScenario(opts *RootOptions, path string, w io.Writer) error {
	s, err := LoadScenario(path)
	if err != nil {
		return err
	}
	res, err := Evaluate(s, opts.Precision)
	if err != nil {
		return fmt.Errorf("%s: %w", s.Name, err)
	}
	return writeResult(w, opts.Format, res)
}

// Evaluate builds the scenario motor and transforms its points, rounding
// every output value to precision decimals.
func Evaluate(s *Scenario, precision int) (*Result, error) {
	m, err := s.Motor()
	if err != nil {
		return nil, err
	}

	src := make([]pga3d.Point, len(s.Points))
	for i, p := range s.Points {
		src[i] = pga3d.Position(pga3d.Float(p[0]), pga3d.Float(p[1]), pga3d.Float(p[2]))
	}
	dst := make([]pga3d.Point, len(src))
	if err := batch.Transform(m, dst, src); err != nil {
		return nil, err
	}

	r := func(v pga3d.Float) float64 { return roundTo(float64(v), precision) }
	t := m.TranslationEuler()
	res := &Result{
		Name: s.Name,
		Motor: MotorOutput{
			VX: r(m.VX), VY: r(m.VY), VZ: r(m.VZ), VW: r(m.VW),
			MX: r(m.MX), MY: r(m.MY), MZ: r(m.MZ), MW: r(m.MW),
		},
		Translation: [3]float64{r(t.X), r(t.Y), r(t.Z)},
		Points:      make([]PointOutput, len(dst)),
	}
	for i, p := range dst {
		p = p.Scaled()
		res.Points[i] = PointOutput{
			In:  s.Points[i],
			Out: [3]float64{r(p.X), r(p.Y), r(p.Z)},
		}
	}
	return res, nil
}

// roundTo rounds v to precision decimals and folds -0 into 0.
func roundTo(v float64, precision int) float64 {
	scale := math.Pow10(precision)
	v = math.Round(v*scale) / scale
	if v == 0 {
		return 0
	}
	return v
}

func writeResult(w io.Writer, format string, res *Result) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
