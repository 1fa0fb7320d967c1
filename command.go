package argspec

import (
	"fmt"

	"github.com/napalu/argspec/util"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SubCommand describes one selectable subcommand: the literal token used to
// select it and the Spec parsed against the tokens following it. The nested
// Spec may be supplied eagerly or built lazily through SpecFunc - lazy specs
// are only constructed when their branch is reached during parsing (completion
// generation resolves the whole tree eagerly).
type SubCommand struct {
	Name        string
	Description string
	Spec        *Spec
	SpecFunc    func() *Spec
	Callback    CommandFunc
	validated   bool
}

// NewCommand configures a SubCommand using option functions.
func NewCommand(name string, configs ...ConfigureCommandFunc) *SubCommand {
	command := &SubCommand{Name: name}
	command.Set(configs...)

	return command
}

// Set configures the SubCommand instance with the provided ConfigureCommandFunc(s)
func (c *SubCommand) Set(configs ...ConfigureCommandFunc) {
	for _, config := range configs {
		config(c)
	}
}

// resolve returns the subcommand's Spec, building it through SpecFunc on
// first use and validating it exactly once.
func (c *SubCommand) resolve() (*Spec, error) {
	if c.Spec == nil {
		if c.SpecFunc == nil {
			return nil, fmt.Errorf("%w: command '%s' has no spec", ErrStructural, c.Name)
		}
		c.Spec = c.SpecFunc()
	}

	if !c.validated {
		if err := c.Spec.Validate(); err != nil {
			return nil, err
		}
		c.validated = true
	}

	return c.Spec, nil
}

// Spec aggregates the descriptors of one command level: its options,
// positional arguments and subcommands, plus display metadata. One Spec exists
// per command level; a Spec never references an ancestor, so the command tree
// is acyclic and recursion depth is bounded by its structure.
type Spec struct {
	AppName     string
	Description string

	options              *orderedmap.OrderedMap[string, *Option]
	shorts               map[string]string
	positionals          []*Positional
	commands             *orderedmap.OrderedMap[string, *SubCommand]
	flagNameConverter    NameConversionFunc
	commandNameConverter NameConversionFunc
}

// NewSpec configures a Spec using option functions and validates its
// structural invariants. Structural violations (index gaps, duplicate short
// flags, multiple terminal collectors) are configuration bugs reported here,
// once, never per parse.
func NewSpec(appName string, configs ...ConfigureSpecFunc) (*Spec, error) {
	spec := &Spec{
		AppName:              appName,
		options:              orderedmap.New[string, *Option](),
		shorts:               map[string]string{},
		commands:             orderedmap.New[string, *SubCommand](),
		flagNameConverter:    DefaultFlagNameConverter,
		commandNameConverter: DefaultCommandNameConverter,
	}

	var err error
	for _, config := range configs {
		config(spec, &err)
		if err != nil {
			return nil, err
		}
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return spec, nil
}

// AddOption registers an Option descriptor. The option name is normalized by
// the Spec's flag name converter. Duplicate long or short names and defaults
// of the wrong type are structural errors.
func (s *Spec) AddOption(option *Option, configs ...ConfigureOptionFunc) error {
	if option == nil || option.Name == "" {
		return fmt.Errorf("%w: can't add an unnamed option", ErrStructural)
	}
	if err := option.Set(configs...); err != nil {
		return err
	}

	option.Name = s.flagNameConverter(option.Name)
	if s.nameTaken(option.Name) {
		return fmt.Errorf("%w: duplicate name '%s'", ErrStructural, option.Name)
	}

	if option.Short != "" {
		if len([]rune(option.Short)) != 1 {
			return fmt.Errorf("%w: short flag '%s' of option '%s' must be a single character", ErrStructural, option.Short, option.Name)
		}
		if existing, exists := s.shorts[option.Short]; exists {
			return fmt.Errorf("%w: short flag '%s' of option '%s' already used by '%s'", ErrStructural, option.Short, option.Name, existing)
		}
	}

	if option.Default != nil && !util.MatchesType(option.Default, option.TypeOf) {
		return fmt.Errorf("%w: default value of option '%s' is not a %s", ErrStructural, option.Name, option.TypeOf)
	}

	if option.Short != "" {
		s.shorts[option.Short] = option.Name
	}
	s.options.Set(option.Name, option)

	return nil
}

// AddPositional registers a Positional descriptor. Index contiguity and
// terminal collector placement are checked by Validate once all descriptors
// are present.
func (s *Spec) AddPositional(positional *Positional, configs ...ConfigurePositionalFunc) error {
	if positional == nil || positional.Name == "" {
		return fmt.Errorf("%w: can't add an unnamed positional", ErrStructural)
	}
	if err := positional.Set(configs...); err != nil {
		return err
	}

	if s.nameTaken(positional.Name) {
		return fmt.Errorf("%w: duplicate name '%s'", ErrStructural, positional.Name)
	}
	if positional.Rest && positional.Raw {
		return fmt.Errorf("%w: positional '%s' can't be both rest and raw", ErrStructural, positional.Name)
	}
	if positional.Index < 0 {
		return fmt.Errorf("%w: positional '%s' has negative index %d", ErrStructural, positional.Name, positional.Index)
	}
	if (positional.Rest || positional.Raw) && !positional.TypeOf.IsList() {
		return fmt.Errorf("%w: positional '%s' collects a list and must use a list type", ErrStructural, positional.Name)
	}
	if positional.Default != nil && !util.MatchesType(positional.Default, positional.TypeOf) {
		return fmt.Errorf("%w: default value of positional '%s' is not a %s", ErrStructural, positional.Name, positional.TypeOf)
	}

	s.positionals = append(s.positionals, positional)

	return nil
}

// AddCommand registers a SubCommand descriptor. The command name is
// normalized by the Spec's command name converter.
func (s *Spec) AddCommand(command *SubCommand, configs ...ConfigureCommandFunc) error {
	if command == nil || command.Name == "" {
		return fmt.Errorf("%w: can't add an unnamed command", ErrStructural)
	}
	command.Set(configs...)

	command.Name = s.commandNameConverter(command.Name)
	if s.nameTaken(command.Name) {
		return fmt.Errorf("%w: duplicate name '%s'", ErrStructural, command.Name)
	}
	if command.Spec == nil && command.SpecFunc == nil {
		return fmt.Errorf("%w: command '%s' has no spec", ErrStructural, command.Name)
	}

	s.commands.Set(command.Name, command)

	return nil
}

// Validate checks the structural invariants which span descriptors:
// contiguous positional indices starting at 0, at most one rest/raw
// positional placed last, and no raw positional alongside subcommands (raw
// absorbs every remaining token verbatim, which contradicts boundary
// splitting). Eagerly supplied subcommand specs are validated recursively;
// lazy specs are validated when resolved.
func (s *Spec) Validate() error {
	count := len(s.positionals)
	byIndex := make([]*Positional, count)
	for _, positional := range s.positionals {
		if positional.Index >= count {
			return fmt.Errorf("%w: positional indices have a gap - index %d of '%s' exceeds the defined range", ErrStructural, positional.Index, positional.Name)
		}
		if byIndex[positional.Index] != nil {
			return fmt.Errorf("%w: positionals '%s' and '%s' share index %d", ErrStructural, byIndex[positional.Index].Name, positional.Name, positional.Index)
		}
		byIndex[positional.Index] = positional
	}

	collectors := 0
	for i, positional := range byIndex {
		if positional.Rest || positional.Raw {
			collectors++
			if collectors > 1 {
				return fmt.Errorf("%w: at most one positional may be rest or raw", ErrStructural)
			}
			if i != count-1 {
				return fmt.Errorf("%w: rest/raw positional '%s' must be last in index order", ErrStructural, positional.Name)
			}
			if positional.Raw && s.commands.Len() > 0 {
				return fmt.Errorf("%w: raw positional '%s' can't be combined with subcommands", ErrStructural, positional.Name)
			}
		}
	}

	for pair := s.commands.Oldest(); pair != nil; pair = pair.Next() {
		command := pair.Value
		if command.Spec == nil && command.SpecFunc == nil {
			return fmt.Errorf("%w: command '%s' has no spec", ErrStructural, command.Name)
		}
		if command.Spec != nil && !command.validated {
			if err := command.Spec.Validate(); err != nil {
				return err
			}
			command.validated = true
		}
	}

	return nil
}

// GetOption returns the Option registered under the given long name.
func (s *Spec) GetOption(name string) (*Option, bool) {
	return s.options.Get(name)
}

// GetCommand returns the SubCommand registered under the given name.
func (s *Spec) GetCommand(name string) (*SubCommand, bool) {
	return s.commands.Get(name)
}

// Positionals returns the positional descriptors ordered by index.
func (s *Spec) Positionals() []*Positional {
	ordered := make([]*Positional, len(s.positionals))
	for _, positional := range s.positionals {
		if positional.Index < len(ordered) {
			ordered[positional.Index] = positional
		}
	}

	return ordered
}

// OptionCount returns the number of registered options
func (s *Spec) OptionCount() int {
	return s.options.Len()
}

// CommandCount returns the number of registered subcommands
func (s *Spec) CommandCount() int {
	return s.commands.Len()
}

// Visit traverses the subcommand tree from top to bottom, resolving lazy
// specs as it goes. The visitor receives each subcommand with its resolved
// Spec, its space-joined path relative to this Spec and its nesting level.
// Returning false skips that branch's descendants.
func (s *Spec) Visit(visitor func(cmd *SubCommand, spec *Spec, path string, level int) bool) error {
	return s.visit(visitor, "", 0)
}

func (s *Spec) visit(visitor func(cmd *SubCommand, spec *Spec, path string, level int) bool, prefix string, level int) error {
	for pair := s.commands.Oldest(); pair != nil; pair = pair.Next() {
		command := pair.Value
		path := command.Name
		if prefix != "" {
			path = prefix + " " + command.Name
		}

		sub, err := command.resolve()
		if err != nil {
			return err
		}
		if !visitor(command, sub, path, level) {
			continue
		}
		if err := sub.visit(visitor, path, level+1); err != nil {
			return err
		}
	}

	return nil
}

// lookupOption resolves a stripped flag token against long names first, then
// single-character short forms.
func (s *Spec) lookupOption(nameOrShort string) (*Option, bool) {
	if option, found := s.options.Get(nameOrShort); found {
		return option, true
	}
	if long, found := s.shorts[nameOrShort]; found {
		return s.options.Get(long)
	}

	return nil, false
}

func (s *Spec) nameTaken(name string) bool {
	if _, exists := s.options.Get(name); exists {
		return true
	}
	if _, exists := s.commands.Get(name); exists {
		return true
	}
	for _, positional := range s.positionals {
		if positional.Name == name {
			return true
		}
	}

	return false
}
