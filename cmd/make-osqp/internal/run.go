package internal

import (
	"os"

	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/shell"

	"github.com/jasonnicholson/osqp-matlab/internal/command"
	"github.com/jasonnicholson/osqp-matlab/internal/execx"
	"github.com/jasonnicholson/osqp-matlab/internal/paths"
	"github.com/jasonnicholson/osqp-matlab/internal/platform"
)

func run(cmd *cobra.Command, args []string) error {
	set, err := command.Parse(args)
	if err != nil {
		return err
	}
	if err := set.Validate(); err != nil {
		return err
	}

	// Resolve every path before any stage changes the working directory.
	p, err := paths.New(rootDir)
	if err != nil {
		return err
	}

	mroot := matlabRoot
	if mroot == "" {
		mroot = os.Getenv("MATLAB_ROOT")
	}

	cmakeExtra, err := splitArgs(cmakeArgs)
	if err != nil {
		return err
	}
	mexExtra, err := splitArgs(mexArgs)
	if err != nil {
		return err
	}

	logger := newLogger()
	return dispatch(options{
		Commands: set,
		Paths:    p,
		Platform: platform.Host(mroot, matlabVersion),
		Runner:   &execx.Exec{Verbose: verbose, Log: logger},
		Log:      logger,
		Debug:    debugBuild,
		CMake:    cmakeExtra,
		Mex:      mexExtra,
		Parallel: parallel,
	})
}

// splitArgs splits an extra-options string with shell quoting rules, so
// values containing spaces survive intact.
func splitArgs(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	return shell.Fields(s, nil)
}
