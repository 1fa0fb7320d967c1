package argspec

// WithCommandDescription the description will be shown in the Commands
// section of usage output and in completion scripts
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *SubCommand) {
		command.Description = description
	}
}

// WithCommandSpec supplies the subcommand's Spec eagerly
func WithCommandSpec(spec *Spec) ConfigureCommandFunc {
	return func(command *SubCommand) {
		command.Spec = spec
	}
}

// WithCommandSpecFunc supplies the subcommand's Spec lazily - the function is
// called at most once, when the subcommand's branch is first reached during
// parsing or completion generation
func WithCommandSpecFunc(specFunc func() *Spec) ConfigureCommandFunc {
	return func(command *SubCommand) {
		command.SpecFunc = specFunc
	}
}

// WithCommandCallback sets a callback which is queued when the command is
// matched on Parse and run via ExecuteCommands/ExecuteCommand
func WithCommandCallback(callback CommandFunc) ConfigureCommandFunc {
	return func(command *SubCommand) {
		command.Callback = callback
	}
}
