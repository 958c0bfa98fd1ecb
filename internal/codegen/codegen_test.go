package codegen

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/jasonnicholson/osqp-matlab/internal/paths"
)

// writeTree lays down a minimal solver source tree.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

func solverTree(t *testing.T) paths.Set {
	t.Helper()
	p, err := paths.New(t.TempDir())
	if err != nil {
		t.Fatalf("paths.New: %v", err)
	}
	writeTree(t, p.OsqpDir, map[string]string{
		"src/osqp.c":                    "solver",
		"src/auxil.c":                   "aux",
		"src/cs.c":                      "sparse helper",
		"src/ctrlc.c":                   "interrupts",
		"src/lin_sys.c":                 "dispatch shim",
		"src/polish.c":                  "polishing",
		"src/CMakeLists.txt":            "src build description",
		"include/osqp.h":                "api",
		"include/types.h":               "types",
		"include/cs.h":                  "sparse helper",
		"include/ctrlc.h":               "interrupts",
		"include/lin_sys.h":             "dispatch shim",
		"include/polish.h":              "polishing",
		"include/glob_opts.h":           "config header",
		"include/CMakeLists.txt":        "include build description",
		"configure/osqp_configure.h.in": "template",

		"lin_sys/direct/qdldl/qdldl_interface.c":                        "interface",
		"lin_sys/direct/qdldl/qdldl_interface.h":                        "interface header",
		"lin_sys/direct/qdldl/qdldl_sources/src/qdldl.c":                "embedded lib",
		"lin_sys/direct/qdldl/qdldl_sources/include/qdldl.h":            "embedded header",
		"lin_sys/direct/qdldl/qdldl_sources/configure/qdldl_types.h.in": "embedded template",
	})
	return p
}

func TestExportCopiesFilteredFiles(t *testing.T) {
	p := solverTree(t)
	if err := Export(p, log.New(io.Discard)); err != nil {
		t.Fatalf("Export: %v", err)
	}

	wantPresent := []string{
		filepath.Join(p.CodegenSources, "osqp.c"),
		filepath.Join(p.CodegenSources, "auxil.c"),
		filepath.Join(p.CodegenSources, "qdldl_interface.c"),
		filepath.Join(p.CodegenSources, "qdldl.c"),
		filepath.Join(p.CodegenSources, "CMakeLists.txt"),
		filepath.Join(p.CodegenInclude, "osqp.h"),
		filepath.Join(p.CodegenInclude, "types.h"),
		filepath.Join(p.CodegenInclude, "qdldl_interface.h"),
		filepath.Join(p.CodegenInclude, "qdldl.h"),
		filepath.Join(p.CodegenInclude, "CMakeLists.txt"),
		filepath.Join(p.CodegenConfigure, "osqp_configure.h.in"),
		filepath.Join(p.CodegenConfigure, "qdldl_types.h.in"),
	}
	for _, path := range wantPresent {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected export %s: %v", path, err)
		}
	}
}

func TestExportNeverCopiesExcluded(t *testing.T) {
	p := solverTree(t)
	if err := Export(p, log.New(io.Discard)); err != nil {
		t.Fatalf("Export: %v", err)
	}

	for name := range ExcludedSources {
		path := filepath.Join(p.CodegenSources, name)
		if _, err := os.Stat(path); err == nil {
			t.Errorf("excluded source %s was exported", name)
		}
	}
	for name := range ExcludedHeaders {
		path := filepath.Join(p.CodegenInclude, name)
		if _, err := os.Stat(path); err == nil {
			t.Errorf("excluded header %s was exported", name)
		}
	}
}

func TestExportKeepsContentVerbatim(t *testing.T) {
	p := solverTree(t)
	if err := Export(p, log.New(io.Discard)); err != nil {
		t.Fatalf("Export: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(p.CodegenSources, "osqp.c"))
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if string(got) != "solver" {
		t.Errorf("exported content = %q, want %q", got, "solver")
	}
}

func TestExportMissingTreeFails(t *testing.T) {
	p, err := paths.New(t.TempDir())
	if err != nil {
		t.Fatalf("paths.New: %v", err)
	}
	if err := Export(p, log.New(io.Discard)); err == nil {
		t.Fatal("Export of missing solver tree succeeded, want error")
	}
}
