package model

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed persisted document or time string.
type ParseError struct {
	Source string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse %s: %s", e.Source, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// NotFoundError reports an id prefix that matches no mark.
type NotFoundError struct {
	Prefix string
	What   string
}

func (e *NotFoundError) Error() string {
	if e.Prefix == "" {
		what := e.What
		if what == "" {
			what = "mark"
		}
		return fmt.Sprintf("no %s found", what)
	}
	return fmt.Sprintf("no mark with id prefix %q", e.Prefix)
}

// AmbiguousIDError reports an id prefix that matches more than one mark.
type AmbiguousIDError struct {
	Prefix     string
	Candidates []string
}

func (e *AmbiguousIDError) Error() string {
	return fmt.Sprintf("id prefix %q is ambiguous, matches: %s",
		e.Prefix, strings.Join(e.Candidates, ", "))
}

// ValidationError reports a missing or invalid command field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IOError reports a read or write failure against the store.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
