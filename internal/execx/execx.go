// Package execx runs the external build tools (cmake, mex) and manages
// the process-wide working directory as a scoped resource.
package execx

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Runner runs an external command and returns its combined output.
// On a non-zero exit the output captured so far is still returned,
// alongside an *ExitError.
type Runner interface {
	Run(name string, args ...string) (output string, err error)
}

// Exec is the real Runner. With Verbose set, subprocess output streams
// to Stdout while still being captured; otherwise it is only captured,
// to be reported on failure.
type Exec struct {
	Verbose bool
	Log     *log.Logger
	Stdout  io.Writer // verbose stream destination, defaults to os.Stdout
}

func (e *Exec) Run(name string, args ...string) (string, error) {
	if e.Log != nil {
		e.Log.Debug("exec", "cmd", name+" "+strings.Join(args, " "))
	}
	cmd := exec.Command(name, args...)
	var buf bytes.Buffer
	// Stdout and Stderr must stay the same value: os/exec then funnels
	// both through one pipe and one goroutine, so the shared buffer is
	// never written concurrently.
	if e.Verbose {
		stdout := e.Stdout
		if stdout == nil {
			stdout = os.Stdout
		}
		w := io.MultiWriter(stdout, &buf)
		cmd.Stdout = w
		cmd.Stderr = w
	} else {
		cmd.Stdout = &buf
		cmd.Stderr = &buf
	}
	if err := cmd.Run(); err != nil {
		return buf.String(), &ExitError{
			Cmd:    name + " " + strings.Join(args, " "),
			Output: buf.String(),
			Err:    err,
		}
	}
	return buf.String(), nil
}

// ExitError reports a failed subprocess together with everything it
// printed.
type ExitError struct {
	Cmd    string
	Output string
	Err    error
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Cmd, e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *ExitError) Unwrap() error { return e.Err }

// Pushd changes the working directory and returns a function that
// changes back. The working directory is process-wide state, so callers
// must defer the restore immediately and never hold two Pushd scopes at
// once.
func Pushd(dir string) (restore func(), err error) {
	prev, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	if err := os.Chdir(dir); err != nil {
		return nil, err
	}
	return func() {
		// Best effort: prev existed moments ago, and restore runs on
		// error paths where a second failure has nowhere to go.
		os.Chdir(prev)
	}, nil
}
