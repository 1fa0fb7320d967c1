package argspec

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/napalu/argspec/types"
)

// Aliases for the shared vocabulary so that callers only need the root
// package for everyday use.
type (
	ValueType         = types.ValueType
	ValidatorFunc     = types.ValidatorFunc
	ListDelimiterFunc = types.ListDelimiterFunc
)

const (
	String     = types.String
	Number     = types.Number
	Boolean    = types.Boolean
	StringList = types.StringList
	NumberList = types.NumberList
)

var (
	ErrUnknownArgument = types.ErrUnknownArgument
	ErrMissingValue    = types.ErrMissingValue
	ErrInvalidNumber   = types.ErrInvalidNumber
	ErrInvalidBoolean  = types.ErrInvalidBoolean
	ErrValidation      = types.ErrValidation
	ErrMissingArgument = types.ErrMissingArgument
	ErrStructural      = types.ErrStructural
	ErrHelpRequested   = types.ErrHelpRequested
	ErrCommandNotFound = types.ErrCommandNotFound
	ErrOptionNotFound  = types.ErrOptionNotFound
	ErrTypeMismatch    = types.ErrTypeMismatch
)

// ConfigureSpecFunc is used when defining Spec options
type ConfigureSpecFunc func(spec *Spec, err *error)

// ConfigureOptionFunc is used when defining Option descriptors
type ConfigureOptionFunc func(option *Option, err *error)

// ConfigurePositionalFunc is used when defining Positional descriptors
type ConfigurePositionalFunc func(positional *Positional, err *error)

// ConfigureCommandFunc is used when defining SubCommand descriptors
type ConfigureCommandFunc func(command *SubCommand)

// ConfigureParserFunc is used when configuring a Parser
type ConfigureParserFunc func(parser *Parser, err *error)

// CommandFunc callback - optionally specified on a SubCommand, queued when the
// command is matched on Parse() and run via ExecuteCommands/ExecuteCommand.
type CommandFunc func(parser *Parser, command *SubCommand, result *Result) error

// NameConversionFunc converts a caller-supplied name to a command/flag name
type NameConversionFunc func(string) string

// Built-in conversion strategies
var (
	// ToKebabCase converts a string to kebab case "my-flag-name"
	ToKebabCase = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToSnakeCase converts a string to snake case "my_flag_name"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToLowerCamel converts a string to lower camel case "myFlagName"
	ToLowerCamel = func(s string) string {
		return strcase.ToLowerCamel(s)
	}

	// ToLowerCase converts a string to lower case "myflagname"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}

	DefaultCommandNameConverter = ToLowerCase
	DefaultFlagNameConverter    = ToKebabCase
)

const FmtErrorWithString = "%w: %s"

// HelpRequested is returned by Parse when --help or -h is scanned. It carries
// the Spec of the command level which requested help together with its
// command path so that the caller can render accurate usage text.
// errors.Is(err, ErrHelpRequested) matches it.
type HelpRequested struct {
	Spec        *Spec
	CommandPath string
}

func (e *HelpRequested) Error() string {
	return "help requested"
}

func (e *HelpRequested) Is(target error) bool {
	return target == types.ErrHelpRequested
}

type commandCallback struct {
	command *SubCommand
	result  *Result
	path    string
}

const (
	longPrefix  = "--"
	shortPrefix = "-"
	helpLong    = "--help"
	helpShort   = "-h"
)

// matchListSeparators is the default ListDelimiterFunc - list values split on ','
func matchListSeparators(r rune) bool {
	return r == ','
}
