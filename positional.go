package argspec

import "fmt"

// Positional describes an argument identified by its position in the token
// stream rather than by a flag name. Indices must be contiguous starting at 0
// within a Spec. A Rest positional absorbs all remaining non-flag tokens as a
// list; a Raw positional absorbs everything remaining verbatim, flags
// included, and terminates option scanning.
type Positional struct {
	Name        string
	TypeOf      ValueType
	Index       int
	Default     any // typed default, nil when the positional has none
	Validators  []ValidatorFunc
	Rest        bool
	Raw         bool
	Description string
}

// NewPositional configures a Positional using option functions.
func NewPositional(name string, index int, configs ...ConfigurePositionalFunc) *Positional {
	positional := &Positional{Name: name, Index: index}
	for _, config := range configs {
		config(positional, nil)
	}

	return positional
}

// Set configures the Positional instance with the provided
// ConfigurePositionalFunc(s), and returns an error if a configuration results
// in an error.
func (p *Positional) Set(configs ...ConfigurePositionalFunc) error {
	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

// String returns a string representation of the Positional instance
func (p *Positional) String() string {
	return fmt.Sprintf("%s \"%s\"", p.placeholder(), p.Description)
}

// required positionals have no default and are not terminal collectors - an
// absent required positional is a fatal parse error.
func (p *Positional) required() bool {
	return p.Default == nil && !p.Rest && !p.Raw
}

// placeholder renders the usage-line form: <name> for required, [name] for
// optional, <name...> for terminal collectors.
func (p *Positional) placeholder() string {
	if p.Rest || p.Raw {
		return "<" + p.Name + "...>"
	}
	if p.Default != nil {
		return "[" + p.Name + "]"
	}

	return "<" + p.Name + ">"
}

// WithPositionalType sets the type each matched token is coerced to. Rest
// positionals must use a list type; Raw positionals are always StringList.
func WithPositionalType(typeOf ValueType) ConfigurePositionalFunc {
	return func(positional *Positional, err *error) {
		positional.TypeOf = typeOf
	}
}

// WithPositionalDescription the description will be used in usage output presented to the user
func WithPositionalDescription(description string) ConfigurePositionalFunc {
	return func(positional *Positional, err *error) {
		positional.Description = description
	}
}

// WithPositionalDefault sets the typed default used when the positional is
// absent from the command line. A positional with a default is optional.
func WithPositionalDefault(defaultValue any) ConfigurePositionalFunc {
	return func(positional *Positional, err *error) {
		positional.Default = defaultValue
	}
}

// WithPositionalValidators sets the ordered validator chain - first failure wins.
func WithPositionalValidators(validators ...ValidatorFunc) ConfigurePositionalFunc {
	return func(positional *Positional, err *error) {
		positional.Validators = validators
	}
}

// AsRest marks the positional as the trailing collector of all remaining
// non-flag tokens. At most one positional per Spec may be Rest or Raw, and it
// must be last in index order.
func AsRest() ConfigurePositionalFunc {
	return func(positional *Positional, err *error) {
		positional.Rest = true
		if !positional.TypeOf.IsList() {
			positional.TypeOf = StringList
		}
	}
}

// AsRaw marks the positional as the trailing collector of everything
// remaining on the command line, verbatim, flag-shaped tokens included.
// Useful for proxy-to-subprocess style commands.
func AsRaw() ConfigurePositionalFunc {
	return func(positional *Positional, err *error) {
		positional.Raw = true
		positional.TypeOf = StringList
	}
}
