package argspec

import (
	"fmt"
	"strings"
)

// Option describes a command-line flag: its long name, optional single
// character short form, target type, typed default value and validator chain.
// An Option is built once per Spec and is immutable during parsing.
type Option struct {
	Name        string
	Short       string
	TypeOf      ValueType
	Default     any // typed default, nil when the option has none
	Validators  []ValidatorFunc
	Description string
}

// NewOption configures an Option using option functions. The name is
// normalized by the owning Spec's flag name converter when the option is
// added.
func NewOption(name string, configs ...ConfigureOptionFunc) *Option {
	option := &Option{Name: name}
	for _, config := range configs {
		config(option, nil)
	}

	return option
}

// Set configures the Option instance with the provided ConfigureOptionFunc(s),
// and returns an error if a configuration results in an error.
func (o *Option) Set(configs ...ConfigureOptionFunc) error {
	var err error
	for _, config := range configs {
		config(o, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

// String returns a string representation of the Option instance
func (o *Option) String() string {
	return strings.TrimLeft(fmt.Sprintf("--%s %s %s", o.Name, o.short(), o.description()), " ")
}

func (o *Option) isBoolean() bool {
	return o.TypeOf == Boolean
}

func (o *Option) short() string {
	if o.Short == "" {
		return ""
	}

	return "or -" + o.Short
}

func (o *Option) description() string {
	if o.Default != nil {
		return fmt.Sprintf("\"%s\" (defaults to: %v)", o.Description, o.Default)
	}

	return fmt.Sprintf("\"%s\"", o.Description)
}
