package model

import (
	"errors"
	"fmt"
)

// ErrInvalidSolution is returned when a solution violates the one-library /
// one-book rules or references indices outside the instance.
var ErrInvalidSolution = errors.New("model: invalid solution")

// ParseError reports malformed or out-of-bounds instance data.  Line is
// 1-based; zero means the error is not tied to a specific input line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Msg)
	}
	return "parse error: " + e.Msg
}

// NewParseError creates a ParseError for the supplied line.
func NewParseError(line int, format string, args ...interface{}) *ParseError {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// IsParseError reports whether err (or any error it wraps) is a ParseError.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}
