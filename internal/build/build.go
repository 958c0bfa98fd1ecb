// Package build produces the osqp static library and the osqp_mex
// extension module.
package build

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/jasonnicholson/osqp-matlab/internal/execx"
	"github.com/jasonnicholson/osqp-matlab/internal/paths"
	"github.com/jasonnicholson/osqp-matlab/internal/platform"
)

// Config carries everything the build stages share. It is assembled
// once by the dispatcher and read-only afterwards.
type Config struct {
	Paths    paths.Set
	Platform platform.Profile
	Runner   execx.Runner
	Log      *log.Logger

	Debug     bool
	CMakeArgs []string // extra args for the configure step, verbatim
	MexArgs   []string // extra args for the mex link, verbatim
	Parallel  int      // inner build parallelism; 0 leaves it to cmake
}

// BuildError reports a failed configure or build step of the static
// library, with everything the tool printed.
type BuildError struct {
	Step   string // "configure" or "build"
	Output string
	Err    error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("osqp library %s failed: %v", e.Step, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// LinkError reports a failed mex invocation.
type LinkError struct {
	Output string
	Err    error
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("osqp_mex link failed: %v", e.Err)
}

func (e *LinkError) Unwrap() error { return e.Err }
