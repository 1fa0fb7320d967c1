package argspec

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Result maps descriptor names to resolved typed values: string, float64,
// bool, []string, []float64 or - for a resolved subcommand - a nested
// *Result. A Result is built fresh per parse call and never mutated after the
// parse completes.
type Result struct {
	commandPath string
	values      *orderedmap.OrderedMap[string, any]
}

func newResult(commandPath string) *Result {
	return &Result{
		commandPath: commandPath,
		values:      orderedmap.New[string, any](),
	}
}

func (r *Result) set(name string, value any) {
	r.values.Set(name, value)
}

// CommandPath returns the space-joined chain of command names which produced
// this Result, starting with the application name. Used for help and error
// display only.
func (r *Result) CommandPath() string {
	return r.commandPath
}

// Get returns the resolved value stored under name
func (r *Result) Get(name string) (any, bool) {
	return r.values.Get(name)
}

// Names returns all descriptor names in declaration order
func (r *Result) Names() []string {
	names := make([]string, 0, r.values.Len())
	for pair := r.values.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}

	return names
}

// GetString returns the string value stored under name
func (r *Result) GetString(name string) (string, error) {
	value, found := r.values.Get(name)
	if !found {
		return "", fmt.Errorf(FmtErrorWithString, ErrOptionNotFound, name)
	}
	typed, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: '%s' does not hold a string", ErrTypeMismatch, name)
	}

	return typed, nil
}

// GetNumber returns the float64 value stored under name
func (r *Result) GetNumber(name string) (float64, error) {
	value, found := r.values.Get(name)
	if !found {
		return 0, fmt.Errorf(FmtErrorWithString, ErrOptionNotFound, name)
	}
	typed, ok := value.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: '%s' does not hold a number", ErrTypeMismatch, name)
	}

	return typed, nil
}

// GetBool returns the bool value stored under name
func (r *Result) GetBool(name string) (bool, error) {
	value, found := r.values.Get(name)
	if !found {
		return false, fmt.Errorf(FmtErrorWithString, ErrOptionNotFound, name)
	}
	typed, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("%w: '%s' does not hold a boolean", ErrTypeMismatch, name)
	}

	return typed, nil
}

// GetStringList returns the []string value stored under name
func (r *Result) GetStringList(name string) ([]string, error) {
	value, found := r.values.Get(name)
	if !found {
		return nil, fmt.Errorf(FmtErrorWithString, ErrOptionNotFound, name)
	}
	typed, ok := value.([]string)
	if !ok {
		return nil, fmt.Errorf("%w: '%s' does not hold a string list", ErrTypeMismatch, name)
	}

	return typed, nil
}

// GetNumberList returns the []float64 value stored under name
func (r *Result) GetNumberList(name string) ([]float64, error) {
	value, found := r.values.Get(name)
	if !found {
		return nil, fmt.Errorf(FmtErrorWithString, ErrOptionNotFound, name)
	}
	typed, ok := value.([]float64)
	if !ok {
		return nil, fmt.Errorf("%w: '%s' does not hold a number list", ErrTypeMismatch, name)
	}

	return typed, nil
}

// Sub returns the nested Result of the subcommand resolved at this level, or
// false when no subcommand (or a different one) was selected.
func (r *Result) Sub(name string) (*Result, bool) {
	value, found := r.values.Get(name)
	if !found {
		return nil, false
	}
	typed, ok := value.(*Result)

	return typed, ok
}
