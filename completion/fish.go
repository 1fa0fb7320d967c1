package completion

import (
	"fmt"
	"strings"
)

type FishGenerator struct{}

// Generate renders a fish completion script: path completion is disabled for
// the program, global flags are offered until a subcommand has been seen,
// each subcommand is offered by name, and each subcommand's flags are guarded
// by that subcommand having been seen.
func (g *FishGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	// disable file completion for the program as a whole
	script.WriteString(fmt.Sprintf("complete -c %s -f\n", programName))

	// global flags - offered only while no subcommand has been seen
	for _, flag := range data.Flags {
		cmd := fmt.Sprintf("complete -c %s -n \"__fish_use_subcommand\" -l %s", programName, flag.Long)
		if flag.Short != "" {
			cmd = fmt.Sprintf("%s -s %s", cmd, flag.Short)
		}
		if flag.Description != "" {
			cmd = fmt.Sprintf("%s -d \"%s\"", cmd, escapeFish(flag.Description))
		}
		script.WriteString(cmd + "\n")
	}

	// top-level commands
	for _, cmd := range data.Commands {
		if strings.Contains(cmd, " ") {
			continue
		}
		rule := fmt.Sprintf("complete -c %s -n \"__fish_use_subcommand\" -a \"%s\"", programName, cmd)
		if desc := data.CommandDescriptions[cmd]; desc != "" {
			rule = fmt.Sprintf("%s -d \"%s\"", rule, escapeFish(desc))
		}
		script.WriteString(rule + "\n")
	}

	// nested commands - offered once their parent has been seen
	for _, cmd := range data.Commands {
		if !strings.Contains(cmd, " ") {
			continue
		}
		parts := strings.Split(cmd, " ")
		parent := parts[len(parts)-2]
		rule := fmt.Sprintf("complete -c %s -n \"__fish_seen_subcommand_from %s\" -a \"%s\"",
			programName, parent, parts[len(parts)-1])
		if desc := data.CommandDescriptions[cmd]; desc != "" {
			rule = fmt.Sprintf("%s -d \"%s\"", rule, escapeFish(desc))
		}
		script.WriteString(rule + "\n")
	}

	// command-specific flags, in command order
	for _, cmd := range data.Commands {
		for _, flag := range data.CommandFlags[cmd] {
			rule := fmt.Sprintf("complete -c %s -n \"__fish_seen_subcommand_from %s\" -l %s",
				programName, lastComponent(cmd), flag.Long)
			if flag.Short != "" {
				rule = fmt.Sprintf("%s -s %s", rule, flag.Short)
			}
			if flag.Description != "" {
				rule = fmt.Sprintf("%s -d \"%s\"", rule, escapeFish(flag.Description))
			}
			script.WriteString(rule + "\n")
		}
	}

	return script.String()
}
