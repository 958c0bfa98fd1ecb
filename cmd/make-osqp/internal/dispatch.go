package internal

import (
	"github.com/charmbracelet/log"

	"github.com/jasonnicholson/osqp-matlab/internal/build"
	"github.com/jasonnicholson/osqp-matlab/internal/clean"
	"github.com/jasonnicholson/osqp-matlab/internal/codegen"
	"github.com/jasonnicholson/osqp-matlab/internal/command"
	"github.com/jasonnicholson/osqp-matlab/internal/execx"
	"github.com/jasonnicholson/osqp-matlab/internal/paths"
	"github.com/jasonnicholson/osqp-matlab/internal/platform"
)

// options is the validated request for one run.
type options struct {
	Commands command.Set
	Paths    paths.Set
	Platform platform.Profile
	Runner   execx.Runner
	Log      *log.Logger
	Debug    bool
	CMake    []string
	Mex      []string
	Parallel int
}

// dispatch runs the requested stages in their fixed order:
// library, extension, codegen, clean, purge. The first failure aborts
// everything after it.
func dispatch(opts options) error {
	cfg := build.Config{
		Paths:     opts.Paths,
		Platform:  opts.Platform,
		Runner:    opts.Runner,
		Log:       opts.Log,
		Debug:     opts.Debug,
		CMakeArgs: opts.CMake,
		MexArgs:   opts.Mex,
		Parallel:  opts.Parallel,
	}

	built := false
	if opts.Commands.Has(command.All) || opts.Commands.Has(command.Osqp) {
		if err := build.Library(cfg); err != nil {
			return err
		}
		built = true
	}

	if opts.Commands.Has(command.All) || opts.Commands.Has(command.OsqpMex) {
		if !built {
			stale, err := build.LibraryStale(opts.Paths)
			if err != nil {
				return err
			}
			if stale {
				if err := build.Library(cfg); err != nil {
					return err
				}
			} else {
				opts.Log.Info("static library up to date", "lib", opts.Paths.LibFile)
			}
		}
		if err := build.Mex(cfg); err != nil {
			return err
		}
	}

	if opts.Commands.Has(command.All) || opts.Commands.Has(command.Codegen) {
		if err := codegen.Export(opts.Paths, opts.Log); err != nil {
			return err
		}
	}

	if opts.Commands.Has(command.Clean) {
		opts.Log.Info("removing built artifacts")
		if err := clean.Clean(opts.Paths); err != nil {
			return err
		}
	}

	if opts.Commands.Has(command.Purge) {
		opts.Log.Info("purging build and codegen trees")
		if err := clean.Purge(opts.Paths); err != nil {
			return err
		}
	}

	return nil
}
