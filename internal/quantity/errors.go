package quantity

import (
	"errors"
	"fmt"
)

// Error is returned by value construction, arithmetic and formatting.
//
// Errors carry a code so callers can tell a malformed format specification
// apart from an arithmetic domain fault without matching on message text.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Symbol is the offending unit, category or format text, if any.
	Symbol string
}

// ErrorCode categorizes value errors.
type ErrorCode string

const (
	// ErrCodeUnknownUnit indicates a unit or category symbol is not in the tables.
	ErrCodeUnknownUnit ErrorCode = "UNKNOWN_UNIT"

	// ErrCodeNegative indicates an operation would produce a negative magnitude.
	ErrCodeNegative ErrorCode = "NEGATIVE"

	// ErrCodeDivisionByZero indicates division by a zero scalar or zero rate.
	ErrCodeDivisionByZero ErrorCode = "DIVISION_BY_ZERO"

	// ErrCodeZeroDuration indicates a speed was built over no time at all.
	ErrCodeZeroDuration ErrorCode = "ZERO_DURATION"

	// ErrCodeInfiniteSpeed indicates a speed difference with no rate left.
	ErrCodeInfiniteSpeed ErrorCode = "INFINITE_SPEED"

	// ErrCodeBadFormat indicates a malformed number format.
	ErrCodeBadFormat ErrorCode = "BAD_FORMAT"

	// ErrCodeNotFinite indicates a NaN or infinite quantity or scalar.
	ErrCodeNotFinite ErrorCode = "NOT_FINITE"
)

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func hasCode(err error, code ErrorCode) bool {
	var qe *Error
	if errors.As(err, &qe) {
		return qe.Code == code
	}
	return false
}

// IsUnknownUnit returns true if err is an unknown unit or category error.
func IsUnknownUnit(err error) bool { return hasCode(err, ErrCodeUnknownUnit) }

// IsNegative returns true if err reports a negative result.
func IsNegative(err error) bool { return hasCode(err, ErrCodeNegative) }

// IsDivisionByZero returns true if err reports division by zero.
func IsDivisionByZero(err error) bool { return hasCode(err, ErrCodeDivisionByZero) }

// IsZeroDuration returns true if err reports a zero-duration speed.
func IsZeroDuration(err error) bool { return hasCode(err, ErrCodeZeroDuration) }

// IsInfiniteSpeed returns true if err reports a speed with no duration left.
func IsInfiniteSpeed(err error) bool { return hasCode(err, ErrCodeInfiniteSpeed) }

// IsNotFinite returns true if err reports a NaN or infinite number.
func IsNotFinite(err error) bool { return hasCode(err, ErrCodeNotFinite) }

// IsBadFormat returns true if err reports a malformed number format.
func IsBadFormat(err error) bool { return hasCode(err, ErrCodeBadFormat) }

type dimension string

const (
	dimensionInformation dimension = "information"
	dimensionDuration    dimension = "duration"
)

func unknownUnit(dim dimension, symbol string) *Error {
	return &Error{
		Code:    ErrCodeUnknownUnit,
		Message: fmt.Sprintf("unknown %s unit or category '%s'", dim, symbol),
		Symbol:  symbol,
	}
}

func negative(op string) *Error {
	return &Error{
		Code:    ErrCodeNegative,
		Message: fmt.Sprintf("%s would produce a negative value", op),
	}
}

func divisionByZero(what string) *Error {
	return &Error{
		Code:    ErrCodeDivisionByZero,
		Message: fmt.Sprintf("cannot divide %s by zero", what),
	}
}

func notFinite(f float64) *Error {
	return &Error{
		Code:    ErrCodeNotFinite,
		Message: fmt.Sprintf("%v is not a finite number", f),
	}
}

func badFormat(format, reason string) *Error {
	return &Error{
		Code:    ErrCodeBadFormat,
		Message: fmt.Sprintf("invalid number format '%s': %s", format, reason),
		Symbol:  format,
	}
}

// ErrZeroDuration is returned when a speed is constructed with no duration.
var ErrZeroDuration = &Error{
	Code:    ErrCodeZeroDuration,
	Message: "speed duration must be greater than zero",
}
