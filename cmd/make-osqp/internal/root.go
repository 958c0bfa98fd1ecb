// Package internal implements the make-osqp command line.
package internal

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	verbose       bool
	debugBuild    bool
	cmakeArgs     string
	mexArgs       string
	rootDir       string
	matlabRoot    string
	matlabVersion string
	parallel      int

	rootCmd = &cobra.Command{
		Use:   "make-osqp [command ...]",
		Short: "Build the OSQP MATLAB interface",
		Long: `make-osqp compiles the OSQP solver into a static library, links the
osqp_mex extension module against it, and can export a trimmed source
subset for code generation.

Commands (case-insensitive; default is "all"):

  all       build osqp, osqp_mex and codegen; may not be combined
  osqp      build the static solver library
  osqp_mex  build the extension module, building the library first
            when it is missing or out of date
  codegen   export the filtered source/header/configure subset
  clean     remove built artifacts; may not be combined
  purge     clean, then remove the build and codegen trees; may not
            be combined

osqp, osqp_mex and codegen combine freely.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
)

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "stream build tool output live")
	rootCmd.Flags().BoolVarP(&debugBuild, "debug", "g", false, "build with debug configuration and symbols")
	rootCmd.Flags().StringVar(&cmakeArgs, "cmake-args", "", "extra options for the cmake configure step")
	rootCmd.Flags().StringVar(&mexArgs, "mex-args", "", "extra options for the mex link step")
	rootCmd.Flags().StringVar(&rootDir, "root", ".", "project root containing the osqp source tree")
	rootCmd.Flags().StringVar(&matlabRoot, "matlab-root", "", "MATLAB installation root (default $MATLAB_ROOT)")
	rootCmd.Flags().StringVar(&matlabVersion, "matlab-version", "", "MATLAB version, e.g. 9.4")
	rootCmd.Flags().IntVarP(&parallel, "parallel", "j", 0, "parallel jobs for the library build")
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "make-osqp"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Execute runs the root command. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		newLogger().Fatal(err)
	}
}
