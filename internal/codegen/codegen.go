// Package codegen exports the trimmed solver source subset used for
// embedded code generation. The export is pure selection and copy; no
// file content is ever rewritten.
package codegen

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/jasonnicholson/osqp-matlab/internal/paths"
)

// ExcludedSources are solver internals that only make sense inside the
// full build: sparse-matrix helpers, interrupt handling, the
// linear-system dispatch shim and the polishing step.
var ExcludedSources = map[string]bool{
	"cs.c":      true,
	"ctrlc.c":   true,
	"lin_sys.c": true,
	"polish.c":  true,
}

// ExcludedHeaders mirrors ExcludedSources and additionally drops the
// configuration headers that are regenerated from the configure
// templates rather than hand-edited after export.
var ExcludedHeaders = map[string]bool{
	"cs.h":             true,
	"ctrlc.h":          true,
	"lin_sys.h":        true,
	"polish.h":         true,
	"glob_opts.h":      true,
	"osqp_configure.h": true,
}

// configureSuffix marks the configure template files, copied verbatim
// without filtering.
const configureSuffix = ".h.in"

func sourceDirs(p paths.Set) []string {
	qdldl := filepath.Join(p.OsqpDir, "lin_sys", "direct", "qdldl")
	return []string{
		filepath.Join(p.OsqpDir, "src"),
		qdldl,
		filepath.Join(qdldl, "qdldl_sources", "src"),
	}
}

func headerDirs(p paths.Set) []string {
	qdldl := filepath.Join(p.OsqpDir, "lin_sys", "direct", "qdldl")
	return []string{
		filepath.Join(p.OsqpDir, "include"),
		qdldl,
		filepath.Join(qdldl, "qdldl_sources", "include"),
	}
}

func configureDirs(p paths.Set) []string {
	return []string{
		filepath.Join(p.OsqpDir, "configure"),
		filepath.Join(p.OsqpDir, "lin_sys", "direct", "qdldl", "qdldl_sources", "configure"),
	}
}

// Export copies the filtered source, header and configure subsets into
// the codegen tree, plus the per-subtree build description files.
func Export(p paths.Set, logger *log.Logger) error {
	logger.Info("exporting codegen sources", "dir", p.CodegenDir)

	for _, dir := range []string{p.CodegenSources, p.CodegenInclude, p.CodegenConfigure} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	if err := copyFiltered(sourceDirs(p), ".c", ExcludedSources, p.CodegenSources); err != nil {
		return err
	}
	if err := copyFiltered(headerDirs(p), ".h", ExcludedHeaders, p.CodegenInclude); err != nil {
		return err
	}
	if err := copyFiltered(configureDirs(p), configureSuffix, nil, p.CodegenConfigure); err != nil {
		return err
	}

	// The build descriptions travel with their subtree, unmodified.
	for _, c := range []struct{ src, dst string }{
		{filepath.Join(p.OsqpDir, "src", "CMakeLists.txt"), filepath.Join(p.CodegenSources, "CMakeLists.txt")},
		{filepath.Join(p.OsqpDir, "include", "CMakeLists.txt"), filepath.Join(p.CodegenInclude, "CMakeLists.txt")},
	} {
		if err := copyFile(c.src, c.dst); err != nil {
			return err
		}
	}
	return nil
}

// copyFiltered copies every regular file in dirs whose name ends in
// suffix and is not excluded, flattening into dst.
func copyFiltered(dirs []string, suffix string, excluded map[string]bool, dst string) error {
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return err
		}
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || !strings.HasSuffix(name, suffix) || excluded[name] {
				continue
			}
			if err := copyFile(filepath.Join(dir, name), filepath.Join(dst, name)); err != nil {
				return err
			}
		}
	}
	return nil
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
