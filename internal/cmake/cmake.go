// Package cmake wraps the cmake configure/build workflow.
package cmake

import (
	"sort"

	"github.com/jasonnicholson/osqp-matlab/internal/execx"
)

// CMake drives a CMake-based build. Invocations run in the caller's
// working directory; the caller is expected to sit in the build
// directory with sourceDir pointing back at the source tree.
type CMake struct {
	sourceDir string
	generator string
	buildType string
	defines   map[string]string
	runner    execx.Runner
}

// New returns a ready-to-use CMake.
func New(sourceDir string, r execx.Runner) *CMake {
	return &CMake{
		sourceDir: sourceDir,
		defines:   make(map[string]string),
		runner:    r,
	}
}

// Generator sets the CMake generator (e.g. "Unix Makefiles", "MinGW Makefiles").
func (c *CMake) Generator(name string) { c.generator = name }

// BuildType sets CMAKE_BUILD_TYPE (e.g. "Debug").
func (c *CMake) BuildType(name string) { c.buildType = name }

// Define adds a -D<key>=<value> definition.
func (c *CMake) Define(key, value string) { c.defines[key] = value }

// Configure runs the cmake configure step with all configured options.
// Extra args are appended before the source directory. The combined
// tool output is returned in both the success and the failure case.
func (c *CMake) Configure(extra ...string) (string, error) {
	var args []string
	if c.generator != "" {
		args = append(args, "-G", c.generator)
	}
	if c.buildType != "" {
		c.Define("CMAKE_BUILD_TYPE", c.buildType)
	}
	args = append(args, c.defineArgs()...)
	args = append(args, extra...)
	args = append(args, c.sourceDir)
	return c.runner.Run("cmake", args...)
}

// Build runs "cmake --build ." limited to target, with optional extra
// arguments.
func (c *CMake) Build(target string, extra ...string) (string, error) {
	args := []string{"--build", "."}
	if target != "" {
		args = append(args, "--target", target)
	}
	args = append(args, extra...)
	return c.runner.Run("cmake", args...)
}

func (c *CMake) defineArgs() []string {
	if len(c.defines) == 0 {
		return nil
	}
	keys := make([]string, 0, len(c.defines))
	for k := range c.defines {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	args := make([]string, 0, len(keys))
	for _, k := range keys {
		args = append(args, "-D"+k+"="+c.defines[k])
	}
	return args
}
