// Package command defines the build command vocabulary and the rules
// for which commands may be combined in a single run.
package command

import (
	"fmt"
	"strings"
)

// Command is one of the recognized build commands.
type Command int

const (
	All Command = iota
	Osqp
	OsqpMex
	Codegen
	Clean
	Purge
)

var names = map[string]Command{
	"all":      All,
	"osqp":     Osqp,
	"osqp_mex": OsqpMex,
	"codegen":  Codegen,
	"clean":    Clean,
	"purge":    Purge,
}

// Vocabulary lists the recognized command tokens in display order.
const Vocabulary = "all, osqp, osqp_mex, codegen, clean, purge"

func (c Command) String() string {
	for name, cmd := range names {
		if cmd == c {
			return name
		}
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Set is the set of commands requested for a run.
type Set map[Command]bool

// Has reports whether c was requested.
func (s Set) Has(c Command) bool { return s[c] }

// Parse converts command tokens into a Set. Tokens are case-insensitive.
// No tokens at all means "all".
func Parse(args []string) (Set, error) {
	if len(args) == 0 {
		return Set{All: true}, nil
	}
	s := make(Set, len(args))
	for _, arg := range args {
		c, ok := names[strings.ToLower(arg)]
		if !ok {
			return nil, &ValidationError{
				Input:  arg,
				Reason: "unknown command",
			}
		}
		s[c] = true
	}
	return s, nil
}

// solo commands may not be combined with anything else, including each other.
var solo = []Command{All, Clean, Purge}

// Validate checks the combination rules: all, clean and purge must each
// appear alone; any non-empty subset of {osqp, osqp_mex, codegen} is fine.
func (s Set) Validate() error {
	if len(s) == 0 {
		return &ValidationError{Input: "", Reason: "no command given"}
	}
	for _, c := range solo {
		if s.Has(c) && len(s) > 1 {
			return &ValidationError{
				Input:  c.String(),
				Reason: "cannot be combined with other commands",
			}
		}
	}
	return nil
}

// ValidationError reports an unknown command token or an invalid
// combination of commands. It is returned before any side effect.
type ValidationError struct {
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid command %q: %s (valid commands: %s)", e.Input, e.Reason, Vocabulary)
}
