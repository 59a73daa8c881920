package main

import (
	"errors"
	"fmt"
	"io/ioutil"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	cfd "github.com/cfdlib/cfd-go/pkg/cfd"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation and report solver statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile).Stop()
		}

		spec := cfd.RunSpec{}
		spec.NX, _ = cmd.Flags().GetInt("nx")
		spec.NY, _ = cmd.Flags().GetInt("ny")
		spec.XMin, _ = cmd.Flags().GetFloat64("xmin")
		spec.XMax, _ = cmd.Flags().GetFloat64("xmax")
		spec.YMin, _ = cmd.Flags().GetFloat64("ymin")
		spec.YMax, _ = cmd.Flags().GetFloat64("ymax")
		spec.Steps, _ = cmd.Flags().GetInt("steps")
		spec.Solver, _ = cmd.Flags().GetString("solver")
		spec.OutputFile, _ = cmd.Flags().GetString("output")

		lib, err := openLibrary()
		if err != nil {
			return err
		}
		defer func() { _ = lib.Close() }()

		params, err := lib.DefaultParams()
		if err != nil {
			return err
		}
		if paramFile, _ := cmd.Flags().GetString("params"); paramFile != "" {
			data, err := ioutil.ReadFile(paramFile)
			if err != nil {
				return err
			}
			if err := params.Parse(data); err != nil {
				return err
			}
			spec.Dt = params.Dt
			spec.CFL = params.CFL
			spec.OverrideParams = true
		}
		if dt, _ := cmd.Flags().GetFloat64("dt"); dt > 0 {
			spec.Dt = dt
			if spec.CFL == 0 {
				spec.CFL = params.CFL
			}
			spec.OverrideParams = true
		}

		res, err := lib.Run(spec)
		if err != nil {
			if res != nil && errors.Is(err, cfd.ErrIO) {
				fmt.Printf("warning: output write failed: %v\n", err)
			} else {
				return err
			}
		}

		stats, err := lib.ComputeFieldStats(res.VelocityMagnitude)
		if err != nil {
			return err
		}
		fmt.Printf("solver:   %s (%s)\n", res.SolverName, res.SolverDescription)
		fmt.Printf("steps:    %d (%d iterations, %.2f ms)\n",
			res.Steps, res.Stats.Iterations, res.Stats.ElapsedMS)
		fmt.Printf("max |u|:  %g\n", res.Stats.MaxVelocity)
		fmt.Printf("max p:    %g\n", res.Stats.MaxPressure)
		fmt.Printf("|u| field: min=%g max=%g avg=%g\n", stats.Min, stats.Max, stats.Avg)
		if res.OutputFile != "" {
			fmt.Printf("wrote:    %s\n", res.OutputFile)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Int("nx", 64, "points in x")
	runCmd.Flags().Int("ny", 64, "points in y")
	runCmd.Flags().Float64("xmin", 0, "domain x minimum")
	runCmd.Flags().Float64("xmax", 1, "domain x maximum")
	runCmd.Flags().Float64("ymin", 0, "domain y minimum")
	runCmd.Flags().Float64("ymax", 1, "domain y maximum")
	runCmd.Flags().Int("steps", 100, "number of time steps")
	runCmd.Flags().Float64("dt", 0, "time step override; 0 keeps the solver default")
	runCmd.Flags().StringP("solver", "s", "", "solver name; empty uses the engine default")
	runCmd.Flags().StringP("params", "p", "", "YAML parameter file")
	runCmd.Flags().String("output", "", "VTK output file for the final field")
	runCmd.Flags().Bool("profile", false, "write a CPU profile for this run")
}
