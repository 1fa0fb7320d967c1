package argspec

import (
	"fmt"
	"io"
	"strings"

	"github.com/napalu/argspec/util"
)

// Renderer produces usage text from a fully-resolved Spec. It reads
// descriptor metadata only and never consults parse state.
type Renderer struct {
	spec        *Spec
	commandPath string
	width       int
}

// NewRenderer creates a Renderer for one command level. commandPath is the
// space-joined ancestor chain shown in the usage line; a width of zero wraps
// to the attached terminal's width.
func NewRenderer(spec *Spec, commandPath string, width int) *Renderer {
	if width <= 0 {
		width = util.TerminalWidth()
	}

	return &Renderer{
		spec:        spec,
		commandPath: commandPath,
		width:       width,
	}
}

// UsageLine renders the one-line synopsis: positional placeholders use
// <name> for required, [name] for optional and <name...> for rest/raw
// collectors.
func (r *Renderer) UsageLine() string {
	var line strings.Builder

	line.WriteString("usage: ")
	line.WriteString(r.commandPath)
	if r.spec.options.Len() > 0 {
		line.WriteString(" [options]")
	}
	for _, positional := range r.spec.Positionals() {
		line.WriteString(" ")
		line.WriteString(positional.placeholder())
	}
	if r.spec.commands.Len() > 0 {
		line.WriteString(" <command>")
	}

	return line.String()
}

// OptionUsage generates a usage string for a flag: long name, short form if
// present, description, default value and whether the flag has a default.
func (r *Renderer) OptionUsage(option *Option) string {
	usage := "--" + option.Name
	if option.Short != "" {
		usage += " or -" + option.Short
	}
	if option.Description != "" {
		usage += " \"" + option.Description + "\""
	}
	if option.Default != nil {
		usage += fmt.Sprintf(" (defaults to: %v)", option.Default)
	}

	return usage
}

// PositionalUsage generates a usage string for a positional argument.
func (r *Renderer) PositionalUsage(positional *Positional) string {
	usage := positional.placeholder()
	if positional.Description != "" {
		usage += " \"" + positional.Description + "\""
	}
	if positional.Default != nil {
		usage += fmt.Sprintf(" (defaults to: %v)", positional.Default)
	}

	return usage
}

// CommandUsage generates a usage string for a subcommand.
func (r *Renderer) CommandUsage(command *SubCommand) string {
	usage := command.Name
	if command.Description != "" {
		usage += " \"" + command.Description + "\""
	}

	return usage
}

// WriteUsage writes the full usage text: synopsis, description, then
// Arguments, Options and Commands sections for whichever descriptor kinds the
// Spec declares.
func (r *Renderer) WriteUsage(writer io.Writer) {
	write := func(line string) {
		_, _ = writer.Write([]byte(line + "\n"))
	}

	write(wrap(r.UsageLine(), r.width, " "))
	if r.spec.Description != "" {
		write("")
		write(wrap(r.spec.Description, r.width, " "))
	}

	if len(r.spec.positionals) > 0 {
		write("")
		write("Arguments:")
		for _, positional := range r.spec.Positionals() {
			write(wrap(" "+r.PositionalUsage(positional), r.width, "   "))
		}
	}

	if r.spec.options.Len() > 0 {
		write("")
		write("Options:")
		for pair := r.spec.options.Oldest(); pair != nil; pair = pair.Next() {
			write(wrap(" "+r.OptionUsage(pair.Value), r.width, "   "))
		}
	}

	if r.spec.commands.Len() > 0 {
		write("")
		write("Commands:")
		for pair := r.spec.commands.Oldest(); pair != nil; pair = pair.Next() {
			write(wrap(" "+r.CommandUsage(pair.Value), r.width, "   "))
		}
	}
}

// wrap breaks a line on spaces so no output row exceeds width, indenting
// continuation rows.
func wrap(text string, width int, indent string) string {
	if len(text) <= width {
		return text
	}

	var (
		out  strings.Builder
		line = ""
	)
	for _, word := range strings.Fields(text) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if len(candidate) > width && line != "" {
			out.WriteString(line + "\n")
			line = indent + word
			continue
		}
		line = candidate
	}
	out.WriteString(line)

	return out.String()
}
