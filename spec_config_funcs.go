package argspec

// WithSpecDescription sets the description shown below the usage line
func WithSpecDescription(description string) ConfigureSpecFunc {
	return func(spec *Spec, err *error) {
		spec.Description = description
	}
}

// WithOption adds an Option descriptor to the Spec
func WithOption(option *Option) ConfigureSpecFunc {
	return func(spec *Spec, err *error) {
		*err = spec.AddOption(option)
	}
}

// WithPositional adds a Positional descriptor to the Spec
func WithPositional(positional *Positional) ConfigureSpecFunc {
	return func(spec *Spec, err *error) {
		*err = spec.AddPositional(positional)
	}
}

// WithCommand adds a SubCommand descriptor to the Spec
func WithCommand(command *SubCommand) ConfigureSpecFunc {
	return func(spec *Spec, err *error) {
		*err = spec.AddCommand(command)
	}
}

// WithFlagNameConverter sets the strategy used to normalize option names.
// Converters apply to descriptors added after them, so supply converters
// before WithOption/WithCommand entries. Defaults to ToKebabCase.
func WithFlagNameConverter(converter NameConversionFunc) ConfigureSpecFunc {
	return func(spec *Spec, err *error) {
		if converter != nil {
			spec.flagNameConverter = converter
		}
	}
}

// WithCommandNameConverter sets the strategy used to normalize subcommand
// names. Defaults to ToLowerCase.
func WithCommandNameConverter(converter NameConversionFunc) ConfigureSpecFunc {
	return func(spec *Spec, err *error) {
		if converter != nil {
			spec.commandNameConverter = converter
		}
	}
}
