package argspec

// WithShortFlag represents the short form of a flag. The short form must be a
// single character and unique within the owning Spec.
func WithShortFlag(shortFlag string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Short = shortFlag
	}
}

// WithDescription the description will be used in usage output presented to the user
func WithDescription(description string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Description = description
	}
}

// WithType sets the type a supplied value is coerced to - one of String,
// Number, Boolean, StringList or NumberList. Boolean flags take no value by
// default (presence means true) but accept =true|false|1|0.
func WithType(typeOf ValueType) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.TypeOf = typeOf
	}
}

// WithDefaultValue sets the typed default used when the flag is absent from
// the command line. The default runs through the same validator chain as an
// explicit value.
func WithDefaultValue(defaultValue any) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Default = defaultValue
	}
}

// WithValidators sets the ordered validator chain. The first validator
// returning a non-empty message short-circuits the chain and is the reported
// error.
func WithValidators(validators ...ValidatorFunc) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Validators = validators
	}
}
