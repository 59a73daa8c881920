package main

import (
	"fmt"

	"github.com/spf13/cobra"

	cfd "github.com/cfdlib/cfd-go/pkg/cfd"
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Build a grid and print its coordinate spacing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		nx, _ := cmd.Flags().GetInt("nx")
		ny, _ := cmd.Flags().GetInt("ny")
		xmin, _ := cmd.Flags().GetFloat64("xmin")
		xmax, _ := cmd.Flags().GetFloat64("xmax")
		ymin, _ := cmd.Flags().GetFloat64("ymin")
		ymax, _ := cmd.Flags().GetFloat64("ymax")
		beta, _ := cmd.Flags().GetFloat64("beta")

		lib, err := openLibrary()
		if err != nil {
			return err
		}
		defer func() { _ = lib.Close() }()

		var g *cfd.Grid
		if beta > 0 {
			g, err = lib.CreateGridStretched(nx, ny, xmin, xmax, ymin, ymax, beta)
		} else {
			g, err = lib.CreateGrid(nx, ny, xmin, xmax, ymin, ymax)
		}
		if err != nil {
			return err
		}

		fmt.Printf("%dx%d grid on [%g,%g]x[%g,%g]\n", g.NX, g.NY, g.XMin, g.XMax, g.YMin, g.YMax)
		if g.Beta > 0 {
			fmt.Printf("stretched, beta=%g\n", g.Beta)
		}
		fmt.Println("x:", formatCoords(g.X))
		fmt.Println("y:", formatCoords(g.Y))
		return nil
	},
}

func formatCoords(c []float64) string {
	const maxShown = 8
	if len(c) <= maxShown {
		return fmt.Sprintf("%.4g", c)
	}
	return fmt.Sprintf("%.4g ... %.4g (%d points)", c[:4], c[len(c)-4:], len(c))
}

func init() {
	rootCmd.AddCommand(gridCmd)
	gridCmd.Flags().Int("nx", 32, "points in x")
	gridCmd.Flags().Int("ny", 32, "points in y")
	gridCmd.Flags().Float64("xmin", 0, "domain x minimum")
	gridCmd.Flags().Float64("xmax", 1, "domain x maximum")
	gridCmd.Flags().Float64("ymin", 0, "domain y minimum")
	gridCmd.Flags().Float64("ymax", 1, "domain y maximum")
	gridCmd.Flags().Float64("beta", 0, "wall clustering parameter; 0 builds a uniform grid")
}
