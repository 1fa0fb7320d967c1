// Package validation provides ready-made validator constructors for Option
// and Positional descriptors. A validator receives the coerced value and
// returns an empty string when the value is acceptable; the first non-empty
// message in a descriptor's chain is the reported error.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/araddon/dateparse"
	"github.com/napalu/argspec/types"
)

// All combines multiple validators - all must pass
func All(validators ...types.ValidatorFunc) types.ValidatorFunc {
	return func(value any) string {
		for _, validator := range validators {
			if message := validator(value); message != "" {
				return message
			}
		}
		return ""
	}
}

// Any combines multiple validators - at least one must pass
func Any(validators ...types.ValidatorFunc) types.ValidatorFunc {
	return func(value any) string {
		messages := make([]string, 0, len(validators))
		for _, validator := range validators {
			message := validator(value)
			if message == "" {
				return ""
			}
			messages = append(messages, message)
		}
		return strings.Join(messages, "; ")
	}
}

// NonEmpty fails on empty strings and empty lists. Attach it to make an
// option or positional effectively required.
func NonEmpty() types.ValidatorFunc {
	return func(value any) string {
		switch typed := value.(type) {
		case string:
			if typed == "" {
				return "must not be empty"
			}
		case []string:
			if len(typed) == 0 {
				return "must not be empty"
			}
		case []float64:
			if len(typed) == 0 {
				return "must not be empty"
			}
		}
		return ""
	}
}

// MinLength validates minimum string length in Unicode characters (not bytes).
// Applied to a string list, every element must satisfy the minimum.
func MinLength(min int) types.ValidatorFunc {
	return func(value any) string {
		for _, s := range stringsOf(value) {
			if utf8.RuneCountInString(s) < min {
				return fmt.Sprintf("'%s' is shorter than %d characters", s, min)
			}
		}
		return ""
	}
}

// MaxLength validates maximum string length in Unicode characters (not bytes).
// Applied to a string list, every element must satisfy the maximum.
func MaxLength(max int) types.ValidatorFunc {
	return func(value any) string {
		for _, s := range stringsOf(value) {
			if utf8.RuneCountInString(s) > max {
				return fmt.Sprintf("'%s' is longer than %d characters", s, max)
			}
		}
		return ""
	}
}

// Min validates a numeric lower bound. Applied to a number list, every
// element must satisfy the bound.
func Min(limit float64) types.ValidatorFunc {
	return func(value any) string {
		for _, n := range numbersOf(value) {
			if n < limit {
				return fmt.Sprintf("%v is less than %v", n, limit)
			}
		}
		return ""
	}
}

// Max validates a numeric upper bound. Applied to a number list, every
// element must satisfy the bound.
func Max(limit float64) types.ValidatorFunc {
	return func(value any) string {
		for _, n := range numbersOf(value) {
			if n > limit {
				return fmt.Sprintf("%v is greater than %v", n, limit)
			}
		}
		return ""
	}
}

// Range validates an inclusive numeric range
func Range(min, max float64) types.ValidatorFunc {
	return All(Min(min), Max(max))
}

// Integer fails when a number has a fractional part
func Integer() types.ValidatorFunc {
	return func(value any) string {
		for _, n := range numbersOf(value) {
			if n != float64(int64(n)) {
				return fmt.Sprintf("%v is not a whole number", n)
			}
		}
		return ""
	}
}

// OneOf validates membership in a fixed set of string values
func OneOf(allowed ...string) types.ValidatorFunc {
	return func(value any) string {
		for _, s := range stringsOf(value) {
			found := false
			for _, candidate := range allowed {
				if s == candidate {
					found = true
					break
				}
			}
			if !found {
				return fmt.Sprintf("'%s' is not one of: %s", s, strings.Join(allowed, ", "))
			}
		}
		return ""
	}
}

// Pattern validates string values against a regular expression. The
// description is used in the failure message shown to the user.
func Pattern(pattern, description string) types.ValidatorFunc {
	compiled, err := regexp.Compile(pattern)
	return func(value any) string {
		if err != nil {
			return fmt.Sprintf("invalid pattern '%s': %s", pattern, err)
		}
		for _, s := range stringsOf(value) {
			if !compiled.MatchString(s) {
				if description != "" {
					return fmt.Sprintf("'%s' does not match: %s", s, description)
				}
				return fmt.Sprintf("'%s' does not match pattern %s", s, pattern)
			}
		}
		return ""
	}
}

// Timestamp validates that string values parse as a date or time in any of
// the formats dateparse recognizes
func Timestamp() types.ValidatorFunc {
	return func(value any) string {
		for _, s := range stringsOf(value) {
			if _, err := dateparse.ParseAny(s); err != nil {
				return fmt.Sprintf("'%s' is not a recognizable date or time", s)
			}
		}
		return ""
	}
}

func stringsOf(value any) []string {
	switch typed := value.(type) {
	case string:
		return []string{typed}
	case []string:
		return typed
	}
	return nil
}

func numbersOf(value any) []float64 {
	switch typed := value.(type) {
	case float64:
		return []float64{typed}
	case []float64:
		return typed
	}
	return nil
}
