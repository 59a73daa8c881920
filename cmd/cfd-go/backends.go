package main

import (
	"fmt"

	"github.com/spf13/cobra"

	cfd "github.com/cfdlib/cfd-go/pkg/cfd"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "Show compute backend and CPU feature availability",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		defer func() { _ = lib.Close() }()

		fmt.Println("Solver backends:")
		for _, b := range []cfd.Backend{cfd.BackendScalar, cfd.BackendSIMD, cfd.BackendOMP, cfd.BackendCUDA} {
			mark := " "
			if lib.BackendAvailable(b) {
				mark = "*"
			}
			fmt.Printf("  [%s] %s\n", mark, b)
		}

		fmt.Println("Boundary-condition backends:")
		for _, b := range []cfd.BCBackend{cfd.BCBackendScalar, cfd.BCBackendOMP, cfd.BCBackendSIMD, cfd.BCBackendCUDA} {
			mark := " "
			if lib.BCBackendAvailable(b) {
				mark = "*"
			}
			fmt.Printf("  [%s] %s\n", mark, b)
		}
		fmt.Printf("  selected: %s\n", lib.BCCurrentBackendName())

		fmt.Printf("SIMD: %s (avx2=%v neon=%v)\n", lib.SIMDName(), lib.HasAVX2(), lib.HasNEON())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backendsCmd)
}
