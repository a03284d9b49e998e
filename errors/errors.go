// Package errors provides error handling for the query parser.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - PII-safe error formatting
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := normalize(v); err != nil {
//	    return errors.Wrap(err, "failed to normalize date value")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrMalformedDate) {
//	    // demote to plain text value
//	}
//
// None of these errors ever cross the public parser boundary:
// parser.Parse is total and encodes degradation in the AST itself. The
// sentinels below exist for internal routing between the grammar, the
// builder and the tests.
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the parsing pipeline.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrMalformedDate indicates a date literal that cannot be normalized
	// (impossible date, unparseable layout). The builder demotes the value
	// to plain text instead of failing the query.
	ErrMalformedDate = New("malformed date literal")

	// ErrInvertedRange indicates a range whose lower bound sorts after its
	// upper bound. The builder keeps the written order and leaves the
	// interpretation to the search backend.
	ErrInvertedRange = New("inverted range bounds")

	// ErrUnknownKeyword indicates a field alias absent from the registry.
	// Callers demote the clause to free text, never surface this to users.
	ErrUnknownKeyword = New("unknown keyword alias")
)

// IsMalformedDateError checks if an error is or wraps ErrMalformedDate
func IsMalformedDateError(err error) bool {
	return err != nil && Is(err, ErrMalformedDate)
}

// IsUnknownKeywordError checks if an error is or wraps ErrUnknownKeyword
func IsUnknownKeywordError(err error) bool {
	return err != nil && Is(err, ErrUnknownKeyword)
}

// NewMalformedDateError creates a malformed-date error with a formatted message
func NewMalformedDateError(format string, args ...interface{}) error {
	return Wrap(ErrMalformedDate, Newf(format, args...).Error())
}
