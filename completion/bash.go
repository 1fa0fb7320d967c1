// completion/bash.go
package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`#!/bin/bash

function __%[1]s_completion() {
    local cur prev words cword cmd
    _init_completion || return

    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    cmd=""

    # Find the last command word
    for ((i=1; i < COMP_CWORD; i++)); do
        if [[ "${COMP_WORDS[i]}" != -* ]]; then
            cmd="${COMP_WORDS[i]}"
        fi
    done

    # If we're completing a flag
    if [[ "$cur" == -* ]]; then
        local flags=()

        # Global flags`, programName))

	// Add global flags in order
	for _, flag := range data.Flags {
		script.WriteString(fmt.Sprintf(`
        flags+=(--%s[%s])`, flag.Long, escapeBash(flag.Description)))
	}

	// Add command-specific flags maintaining command order
	script.WriteString(`

        # Command-specific flags
        case "${cmd}" in`)

	for _, cmd := range data.Commands {
		flags, ok := data.CommandFlags[cmd]
		if !ok || len(flags) == 0 {
			continue
		}
		flagStrs := make([]string, len(flags))
		for i, flag := range flags {
			flagStrs[i] = fmt.Sprintf("--%s[%s]", flag.Long, escapeBash(flag.Description))
		}
		script.WriteString(fmt.Sprintf(`
            %s)
                local cmd_flags=(%s)
                flags+=("${cmd_flags[@]}")
                ;;`, lastComponent(cmd), strings.Join(flagStrs, " ")))
	}

	script.WriteString(`
        esac

        COMPREPLY=( $(compgen -W "${flags[*]%%[*}" -- "$cur") )
        return
    fi

    # Complete commands if no command is present yet
    if [[ -z "$cmd" ]]; then
        local commands=(`)

	// Add top-level command completions in original order
	cmdStrs := make([]string, 0, len(data.Commands))
	for _, cmd := range data.Commands {
		if strings.Contains(cmd, " ") {
			continue
		}
		cmdStrs = append(cmdStrs, fmt.Sprintf("%s[%s]", cmd, escapeBash(data.CommandDescriptions[cmd])))
	}
	script.WriteString(strings.Join(cmdStrs, " "))

	script.WriteString(`)
        COMPREPLY=( $(compgen -W "${commands[*]%%[*}" -- "$cur") )
        return
    fi

    # Complete nested commands of the command seen so far
    case "${cmd}" in`)

	// Offer children of each command, maintaining parent order
	for _, parent := range data.Commands {
		children := make([]string, 0)
		prefix := parent + " "
		for _, cmd := range data.Commands {
			if strings.HasPrefix(cmd, prefix) && !strings.Contains(strings.TrimPrefix(cmd, prefix), " ") {
				children = append(children, lastComponent(cmd))
			}
		}
		if len(children) == 0 {
			continue
		}
		script.WriteString(fmt.Sprintf(`
        %s)
            COMPREPLY=( $(compgen -W "%s" -- "$cur") )
            ;;`, lastComponent(parent), strings.Join(children, " ")))
	}

	script.WriteString(fmt.Sprintf(`
    esac
}

complete -F __%[1]s_completion %[1]s`, programName))

	return script.String()
}
