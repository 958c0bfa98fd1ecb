// Package clean removes generated build artifacts. Both operations are
// idempotent; the absence of a target is never an error.
package clean

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jasonnicholson/osqp-matlab/internal/paths"
)

// mexPatterns match the extension-module artifacts mex may have left
// next to the sources, across platforms and MATLAB generations.
var mexPatterns = []string{"osqp_mex.mex*", "osqp_mex.dll", "osqp_mex.pdb"}

// Clean removes the extension module artifacts and the static library.
func Clean(p paths.Set) error {
	for _, pattern := range mexPatterns {
		matches, err := filepath.Glob(filepath.Join(p.Root, pattern))
		if err != nil {
			return err
		}
		for _, m := range matches {
			if err := remove(m); err != nil {
				return err
			}
		}
	}
	return remove(p.LibFile)
}

// Purge removes everything Clean removes, plus the build directory and
// the codegen export tree.
func Purge(p paths.Set) error {
	if err := Clean(p); err != nil {
		return err
	}
	if err := os.RemoveAll(p.BuildDir); err != nil {
		return err
	}
	return os.RemoveAll(p.CodegenDir)
}

func remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
