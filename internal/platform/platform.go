// Package platform derives the OS and MATLAB dependent flags consumed
// by the library build and the mex link.
package platform

import (
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/mod/semver"
)

// interleavedComplexAPI is the MATLAB release (R2018a) that introduced
// the interleaved-complex MEX API. Older releases need -largeArrayDims
// on 64-bit hosts instead of -R2018a.
const interleavedComplexAPI = "v9.4"

// OS is the coarse OS family the build cares about.
type OS int

const (
	Unix OS = iota // any unix that is not macOS
	Windows
	Darwin
)

func (o OS) String() string {
	switch o {
	case Windows:
		return "windows"
	case Darwin:
		return "darwin"
	}
	return "unix"
}

// Profile captures the host facts the flag assembly depends on.
// It is computed once per run and never mutated.
type Profile struct {
	OS         OS
	Is64Bit    bool
	MatlabRoot string
	Version    string // MATLAB version, e.g. "9.4"; empty assumes a current release
}

// Host builds the Profile for the running machine.
func Host(matlabRoot, version string) Profile {
	p := Profile{
		MatlabRoot: matlabRoot,
		Version:    version,
		Is64Bit:    strings.Contains(runtime.GOARCH, "64"),
	}
	switch runtime.GOOS {
	case "windows":
		p.OS = Windows
	case "darwin":
		p.OS = Darwin
	}
	return p
}

// Generator returns the cmake makefile generator for this platform.
func (p Profile) Generator() string {
	if p.OS == Windows {
		return "MinGW Makefiles"
	}
	return "Unix Makefiles"
}

// MatlabRootForward returns the MATLAB root with backslashes normalized
// to forward slashes, the form cmake accepts on every platform.
func (p Profile) MatlabRootForward() string {
	return strings.ReplaceAll(p.MatlabRoot, `\`, "/")
}

// modernAPI reports whether the MATLAB release is at or past the
// interleaved-complex API generation.
func (p Profile) modernAPI() bool {
	if p.Version == "" {
		return true
	}
	return semver.Compare("v"+p.Version, interleavedComplexAPI) >= 0
}

// MexFlags assembles the optimization, debug and API flags for the mex
// invocation.
func (p Profile) MexFlags(debug bool) []string {
	var flags []string
	if debug {
		flags = append(flags, "-g")
	} else {
		flags = append(flags, "-O")
	}
	switch {
	case p.modernAPI():
		flags = append(flags, "-R2018a")
	case p.Is64Bit:
		flags = append(flags, "-largeArrayDims")
	}
	if p.OS != Windows {
		flags = append(flags, "COPTIMFLAGS=-O3")
	}
	return flags
}

// MexLibs returns the extra libraries (and search paths) the mex link
// needs on this platform.
func (p Profile) MexLibs() []string {
	switch p.OS {
	case Windows:
		libDir := filepath.Join(p.MatlabRoot, "extern", "lib", "win64", "mingw64")
		return []string{"-L" + libDir, "-llibut"}
	case Darwin:
		return nil
	default:
		return []string{"-ldl"}
	}
}

// MexExt returns the extension-module filename suffix MATLAB expects on
// this platform.
func (p Profile) MexExt() string {
	switch p.OS {
	case Windows:
		if p.Is64Bit {
			return "mexw64"
		}
		return "mexw32"
	case Darwin:
		return "mexmaci64"
	default:
		if p.Is64Bit {
			return "mexa64"
		}
		return "mexglx"
	}
}
