package main

import (
	"errors"
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	cfd "github.com/cfdlib/cfd-go/pkg/cfd"
	"github.com/cfdlib/cfd-go/pkg/cfd/logging"
)

var (
	cfgFile   string
	outputDir string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "cfd-go",
	Short: "Command line front end for the libcfd solver engine",
	Long: `cfd-go drives the native libcfd solver engine: inspect the solver
registry and compute backends, build grids, and run simulations.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cfd-go.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", "", "base directory for solver output files")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = viper.BindPFlag("output_dir", rootCmd.PersistentFlags().Lookup("output-dir"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".cfd-go")
	}

	viper.SetEnvPrefix("CFD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "using config file:", viper.ConfigFileUsed())
	}
}

func newLogger() logging.Logger {
	var (
		zl  *zap.Logger
		err error
	)
	if verbose {
		zl, err = zap.NewDevelopment()
	} else {
		zl, err = zap.NewProduction()
	}
	if err != nil {
		return logging.Nop()
	}
	return logging.New(zl)
}

// openLibrary opens the engine with the configured output directory.
func openLibrary() (*cfd.Library, error) {
	dir := viper.GetString("output_dir")
	lib, err := cfd.Open(cfd.Config{
		OutputDir: dir,
		Logger:    newLogger(),
	})
	if err != nil {
		if errors.Is(err, cfd.ErrNotBuilt) {
			return nil, fmt.Errorf("this binary was built without the native engine (rebuild with cgo and libcfd installed)")
		}
		return nil, err
	}
	return lib, nil
}
