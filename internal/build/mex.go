package build

import (
	"path/filepath"

	"github.com/jasonnicholson/osqp-matlab/internal/execx"
)

// Mex links the osqp_mex extension module against the static library.
// It runs from the project root so mex drops the artifact next to the
// sources, the way MATLAB expects to find it.
func Mex(cfg Config) error {
	cfg.Log.Info("building osqp_mex extension", "ext", cfg.Platform.MexExt())

	restore, err := execx.Pushd(cfg.Paths.Root)
	if err != nil {
		return err
	}
	defer restore()

	args := []string{filepath.Base(cfg.Paths.MexSource)}
	args = append(args, cfg.Platform.MexFlags(cfg.Debug)...)
	for _, dir := range cfg.Paths.IncludeDirs {
		args = append(args, "-I"+dir)
	}
	args = append(args, cfg.MexArgs...)
	args = append(args, cfg.Platform.MexLibs()...)
	args = append(args, cfg.Paths.LibFile)

	if out, err := cfg.Runner.Run("mex", args...); err != nil {
		return &LinkError{Output: out, Err: err}
	}
	return nil
}
