// Package paths derives every directory and file location used by the
// build from a single anchor directory, so the rest of the tool never
// joins paths on its own.
package paths

import "path/filepath"

// Set holds the absolute paths for one run. It is computed once and
// never mutated afterwards.
type Set struct {
	Root     string // project root (anchor)
	OsqpDir  string // vendored solver source tree
	BuildDir string // cmake build directory, recreated on every build

	IncludeDirs []string // -I dirs for the mex link

	LibFile      string // final static library location
	BuildLibFile string // where cmake leaves the static library
	MexSource    string // osqp_mex.cpp

	CodegenDir       string
	CodegenSources   string
	CodegenInclude   string
	CodegenConfigure string
}

// New resolves root to an absolute path and derives the full Set.
func New(root string) (Set, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return Set{}, err
	}
	osqp := filepath.Join(abs, "osqp")
	codegen := filepath.Join(abs, "codegen")
	return Set{
		Root:     abs,
		OsqpDir:  osqp,
		BuildDir: filepath.Join(abs, "build"),
		IncludeDirs: []string{
			filepath.Join(osqp, "include"),
			filepath.Join(osqp, "lin_sys", "direct"),
			filepath.Join(osqp, "lin_sys", "direct", "qdldl"),
		},
		LibFile:          filepath.Join(abs, "libosqpstatic.a"),
		BuildLibFile:     filepath.Join(abs, "build", "out", "libosqpstatic.a"),
		MexSource:        filepath.Join(abs, "osqp_mex.cpp"),
		CodegenDir:       codegen,
		CodegenSources:   filepath.Join(codegen, "sources"),
		CodegenInclude:   filepath.Join(codegen, "include"),
		CodegenConfigure: filepath.Join(codegen, "configure"),
	}, nil
}
