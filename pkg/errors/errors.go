package errors

import (
	"fmt"
)

// ParseError reports a config file that could not be decoded.
type ParseError struct {
	Path string
	Line int // 0 when the decoder gave no position
	Err  error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	return &ParseError{Path: path, Line: line, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	where := e.Path
	if e.Line > 0 {
		where = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	return fmt.Sprintf("parse config %s: %v", where, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError names the config field that failed a rule. Field uses
// the YAML spelling, e.g. theme.poll_interval.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, reason string, err error) error {
	return &ValidationError{Field: field, Reason: reason, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StoreError reports a failed read or write of the preference file.
type StoreError struct {
	Op   string
	Path string
	Err  error
}

// NewStoreError constructs a StoreError for the given operation ("load", "save").
func NewStoreError(op, path string, err error) error {
	return &StoreError{Op: op, Path: path, Err: err}
}

func (e *StoreError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("preferences %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ProbeError means an appearance probe produced no reading.
type ProbeError struct {
	Probe string
	Err   error
}

// NewProbeError constructs a ProbeError for the named probe.
func NewProbeError(probe string, err error) error {
	return &ProbeError{Probe: probe, Err: err}
}

func (e *ProbeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("appearance probe [%s]: %v", e.Probe, e.Err)
}

func (e *ProbeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
