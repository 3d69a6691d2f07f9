// Package errs is the single place that touches cockroachdb/errors. The
// rest of the codebase wraps, marks and inspects errors through it.
package errs

import (
	"fmt"
	"strings"

	cockroach "github.com/cockroachdb/errors"
)

// New returns a stack-annotated error.
func New(msg string) error {
	return cockroach.New(msg)
}

// Wrap annotates err with msg while preserving the chain. A nil err stays
// nil so call sites can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cockroach.Wrap(err, msg)
}

// Mark attaches a sentinel to err: errors.Is matches the sentinel while the
// message and stack trace of err survive for the logs.
func Mark(err error, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return cockroach.Mark(err, sentinel)
}

// StackLines renders the verbose form of err as individual lines, capped at
// maxLines (0 means uncapped). Meant for structured log payloads.
func StackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
