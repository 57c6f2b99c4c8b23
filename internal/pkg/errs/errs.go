// Package errs wraps cockroachdb/errors. Use cases classify failures by marking them
// with the sentinels in domain_errors.go; handlers map marks to status codes.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

// Wrap returns nil for a nil err so it can wrap a call's result directly.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark tags err with kind. A nil err yields kind itself.
func Mark(err error, kind error) error {
	if err == nil {
		return kind
	}
	return cr.Mark(err, kind)
}

// Reject is a new error with a stack, marked with kind.
func Reject(kind error, msg string) error {
	return cr.Mark(cr.New(msg), kind)
}

// Is reports whether err is, wraps, or is marked with target.
func Is(err, target error) bool {
	return cr.Is(err, target)
}

// ExtractStackLines renders err with its stack and keeps the first maxLines lines (all when maxLines <= 0).
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
