// Package types holds the shared vocabulary of the argspec packages: the
// value types a descriptor can declare, validator and delimiter function
// signatures, and the sentinel errors reported by the engine.
package types

import "errors"

// ValueType defines the type a raw command-line token is coerced to.
type ValueType int

const (
	// String denotes a descriptor holding a single string value
	String ValueType = iota
	// Number denotes a descriptor holding a float64 value
	Number
	// Boolean denotes a descriptor holding a bool value - for options, presence alone means true
	Boolean
	// StringList denotes a descriptor holding a []string value split on the list delimiter
	StringList
	// NumberList denotes a descriptor holding a []float64 value split on the list delimiter
	NumberList
)

// String returns the string representation of a ValueType
func (v ValueType) String() string {
	switch v {
	case String:
		return "string"
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	case StringList:
		return "string list"
	case NumberList:
		return "number list"
	}

	return "unknown"
}

// IsList returns true for the slice-valued types
func (v ValueType) IsList() bool {
	return v == StringList || v == NumberList
}

// ValidatorFunc checks a coerced value and returns an empty string when the
// value is acceptable. A non-empty return is the failure message reported to
// the user; the first failing validator in a chain short-circuits the rest.
type ValidatorFunc func(value any) string

// ListDelimiterFunc signature to match when supplying a user-defined function to check for the runes
// which form list delimiters. Defaults to ','.
type ListDelimiterFunc func(matchOn rune) bool

var (
	ErrUnknownArgument = errors.New("unknown argument")
	ErrMissingValue    = errors.New("missing value")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrInvalidBoolean  = errors.New("invalid boolean")
	ErrValidation      = errors.New("validation failed")
	ErrMissingArgument = errors.New("missing argument")
	ErrStructural      = errors.New("invalid command spec")
	ErrHelpRequested   = errors.New("help requested")
	ErrCommandNotFound = errors.New("command not found")
	ErrOptionNotFound  = errors.New("option not found")
	ErrTypeMismatch    = errors.New("type mismatch")
)
