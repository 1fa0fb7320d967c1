package util

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/napalu/argspec/types"
)

// Coerce converts a raw command-line token to the typed value described by
// typeOf. Numbers use standard floating-point parsing - a token which does not
// parse is an error, never a silent zero. List types split the token using
// delimiterFunc and coerce each element independently; an empty token yields
// an empty slice.
func Coerce(value string, typeOf types.ValueType, delimiterFunc types.ListDelimiterFunc) (any, error) {
	switch typeOf {
	case types.String:
		return value, nil
	case types.Number:
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: '%s'", types.ErrInvalidNumber, value)
		}
		return val, nil
	case types.Boolean:
		val, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%w: '%s'", types.ErrInvalidBoolean, value)
		}
		return val, nil
	case types.StringList:
		return splitList(value, delimiterFunc), nil
	case types.NumberList:
		parts := splitList(value, delimiterFunc)
		values := make([]float64, len(parts))
		for i, part := range parts {
			val, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: '%s'", types.ErrInvalidNumber, part)
			}
			values[i] = val
		}
		return values, nil
	}

	return nil, fmt.Errorf("%w: unsupported value type '%s'", types.ErrTypeMismatch, typeOf)
}

// ZeroValue returns the typed zero value for typeOf. It is used when a
// descriptor without a default was not supplied on the command line.
func ZeroValue(typeOf types.ValueType) any {
	switch typeOf {
	case types.Number:
		return float64(0)
	case types.Boolean:
		return false
	case types.StringList:
		return []string{}
	case types.NumberList:
		return []float64{}
	default:
		return ""
	}
}

// MatchesType reports whether a typed default value is of the Go type implied
// by typeOf.
func MatchesType(value any, typeOf types.ValueType) bool {
	switch typeOf {
	case types.String:
		_, ok := value.(string)
		return ok
	case types.Number:
		_, ok := value.(float64)
		return ok
	case types.Boolean:
		_, ok := value.(bool)
		return ok
	case types.StringList:
		_, ok := value.([]string)
		return ok
	case types.NumberList:
		_, ok := value.([]float64)
		return ok
	}

	return false
}

func splitList(value string, delimiterFunc types.ListDelimiterFunc) []string {
	if value == "" {
		return []string{}
	}

	return strings.FieldsFunc(value, delimiterFunc)
}
