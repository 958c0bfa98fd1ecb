package clean

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jasonnicholson/osqp-matlab/internal/paths"
)

func builtTree(t *testing.T) paths.Set {
	t.Helper()
	p, err := paths.New(t.TempDir())
	if err != nil {
		t.Fatalf("paths.New: %v", err)
	}
	for _, f := range []string{
		p.LibFile,
		filepath.Join(p.Root, "osqp_mex.mexa64"),
		filepath.Join(p.Root, "osqp_mex.mexw64"),
		filepath.Join(p.BuildDir, "out", "libosqpstatic.a"),
		filepath.Join(p.CodegenSources, "osqp.c"),
	} {
		if err := os.MkdirAll(filepath.Dir(f), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return p
}

func TestCleanRemovesArtifacts(t *testing.T) {
	p := builtTree(t)
	if err := Clean(p); err != nil {
		t.Fatalf("Clean: %v", err)
	}
	for _, gone := range []string{
		p.LibFile,
		filepath.Join(p.Root, "osqp_mex.mexa64"),
		filepath.Join(p.Root, "osqp_mex.mexw64"),
	} {
		if _, err := os.Stat(gone); !os.IsNotExist(err) {
			t.Errorf("%s still present after Clean", gone)
		}
	}
	// Clean leaves the build and codegen trees alone.
	for _, kept := range []string{p.BuildDir, p.CodegenDir} {
		if _, err := os.Stat(kept); err != nil {
			t.Errorf("%s removed by Clean: %v", kept, err)
		}
	}
	// The mex source must never match the artifact patterns.
	src := filepath.Join(p.Root, "osqp_mex.cpp")
	if err := os.WriteFile(src, []byte("src"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := Clean(p); err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("osqp_mex.cpp removed by Clean: %v", err)
	}
}

func TestCleanIdempotent(t *testing.T) {
	p := builtTree(t)
	if err := Clean(p); err != nil {
		t.Fatalf("first Clean: %v", err)
	}
	if err := Clean(p); err != nil {
		t.Fatalf("second Clean: %v", err)
	}
}

func TestCleanOnEmptyTree(t *testing.T) {
	p, err := paths.New(t.TempDir())
	if err != nil {
		t.Fatalf("paths.New: %v", err)
	}
	if err := Clean(p); err != nil {
		t.Errorf("Clean on empty tree: %v", err)
	}
}

func TestPurgeSupersetOfClean(t *testing.T) {
	p := builtTree(t)
	if err := Purge(p); err != nil {
		t.Fatalf("Purge: %v", err)
	}
	for _, gone := range []string{
		p.LibFile,
		filepath.Join(p.Root, "osqp_mex.mexa64"),
		p.BuildDir,
		p.CodegenDir,
	} {
		if _, err := os.Stat(gone); !os.IsNotExist(err) {
			t.Errorf("%s still present after Purge", gone)
		}
	}
}

func TestPurgeOnEmptyTree(t *testing.T) {
	p, err := paths.New(t.TempDir())
	if err != nil {
		t.Fatalf("paths.New: %v", err)
	}
	if err := Purge(p); err != nil {
		t.Errorf("Purge on empty tree: %v", err)
	}
}
