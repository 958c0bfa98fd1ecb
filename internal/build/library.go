package build

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jasonnicholson/osqp-matlab/internal/cmake"
	"github.com/jasonnicholson/osqp-matlab/internal/execx"
	"github.com/jasonnicholson/osqp-matlab/internal/paths"
)

// staticTarget is the cmake target that produces the standalone solver
// library.
const staticTarget = "osqpstatic"

// Library compiles the solver into a static library. The build
// directory is recreated from scratch; builds are never incremental.
func Library(cfg Config) error {
	cfg.Log.Info("building osqp static library", "dir", cfg.Paths.BuildDir)

	if err := os.RemoveAll(cfg.Paths.BuildDir); err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Paths.BuildDir, 0o755); err != nil {
		return err
	}

	// The working directory is process-wide state; restore it on every
	// exit path before any error propagates.
	restore, err := execx.Pushd(cfg.Paths.BuildDir)
	if err != nil {
		return err
	}
	defer restore()

	// The CMakeLists.txt lives in the solver tree, not the project root.
	c := cmake.New(cfg.Paths.OsqpDir, cfg.Runner)
	c.Generator(cfg.Platform.Generator())
	if root := cfg.Platform.MatlabRootForward(); root != "" {
		c.Define("MATLAB_ROOT", root)
	}
	if cfg.Debug {
		c.BuildType("Debug")
	}

	if out, err := c.Configure(cfg.CMakeArgs...); err != nil {
		return &BuildError{Step: "configure", Output: out, Err: err}
	}

	var buildArgs []string
	if cfg.Parallel > 0 {
		buildArgs = append(buildArgs, "--parallel", strconv.Itoa(cfg.Parallel))
	}
	if out, err := c.Build(staticTarget, buildArgs...); err != nil {
		return &BuildError{Step: "build", Output: out, Err: err}
	}

	cfg.Log.Info("copying static library", "to", cfg.Paths.LibFile)
	return copyFile(cfg.Paths.BuildLibFile, cfg.Paths.LibFile)
}

// LibraryStale reports whether the static library needs rebuilding:
// it is missing, or any file in the solver source tree is newer.
func LibraryStale(p paths.Set) (bool, error) {
	info, err := os.Stat(p.LibFile)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	libTime := info.ModTime()

	stale := false
	err = filepath.WalkDir(p.OsqpDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		if fi.ModTime().After(libTime) {
			stale = true
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return stale, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
