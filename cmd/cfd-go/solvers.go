package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	cfd "github.com/cfdlib/cfd-go/pkg/cfd"
)

var solversCmd = &cobra.Command{
	Use:   "solvers [name]",
	Short: "List registered solvers, or show details for one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		defer func() { _ = lib.Close() }()

		if len(args) == 1 {
			return printSolverInfo(lib, args[0])
		}

		backendFlag, _ := cmd.Flags().GetString("backend")
		if backendFlag != "" {
			return printSolversForBackend(lib, backendFlag)
		}

		names, err := lib.ListSolvers()
		if err != nil {
			return err
		}
		for _, name := range names {
			info, err := lib.GetSolverInfo(name)
			if err != nil {
				return err
			}
			fmt.Printf("%-20s %s (v%s)\n", name, info.Description, info.Version)
		}
		return nil
	},
}

func printSolverInfo(lib *cfd.Library, name string) error {
	info, err := lib.GetSolverInfo(name)
	if err != nil {
		return err
	}
	fmt.Printf("Name:         %s\n", info.Name)
	fmt.Printf("Description:  %s\n", info.Description)
	fmt.Printf("Version:      %s\n", info.Version)
	fmt.Printf("Capabilities: %s\n", strings.Join(info.Capabilities, ", "))
	return nil
}

func printSolversForBackend(lib *cfd.Library, backend string) error {
	tag, err := parseBackend(backend)
	if err != nil {
		return err
	}
	names, err := lib.SolversForBackend(tag)
	if err != nil {
		return err
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}

func parseBackend(s string) (cfd.Backend, error) {
	switch strings.ToLower(s) {
	case "scalar":
		return cfd.BackendScalar, nil
	case "simd":
		return cfd.BackendSIMD, nil
	case "omp":
		return cfd.BackendOMP, nil
	case "cuda":
		return cfd.BackendCUDA, nil
	default:
		return 0, fmt.Errorf("unknown backend %q (expected scalar, simd, omp, or cuda)", s)
	}
}

func init() {
	rootCmd.AddCommand(solversCmd)
	solversCmd.Flags().StringP("backend", "b", "", "list only solvers implemented for this backend")
}
