package argspec

import (
	"fmt"
	"os"
	"strings"

	"github.com/napalu/argspec/parse"
	"github.com/napalu/argspec/util"
)

// parseLevel runs the full engine for one command level: it locates the
// subcommand boundary, classifies the tokens on this side of it in a single
// left-to-right scan, then runs deferred coercion plus validation over every
// descriptor (supplied or defaulted) before recursing into the selected
// subcommand. Each level operates on its own state - nothing is shared
// between sibling invocations or across Parse calls.
func (p *Parser) parseLevel(spec *Spec, tokens []string, commandPath string) (*Result, error) {
	head, command, tail := splitAtSubcommand(spec, tokens)

	var (
		seen        = map[string]string{}
		filled      []string
		rest        []string
		raw         []string
		extras      []string
		rawMode     bool
		positionals = spec.Positionals()
		posIndex    = 0
	)

	// Classification pass. Values are captured as raw strings here; coercion
	// and validation run after the scan so that a help token always
	// short-circuits before any value of a preceding flag is interpreted.
	state := parse.NewState(head)
	for state.Advance() {
		current := state.CurrentArg()
		if rawMode {
			raw = append(raw, current)
			continue
		}
		if current == helpLong || current == helpShort {
			return nil, &HelpRequested{Spec: spec, CommandPath: commandPath}
		}

		if isFlagToken(current) {
			name, inline, hasInline := splitFlagToken(current)
			option, found := spec.lookupOption(name)
			if !found {
				return nil, fmt.Errorf("%w '--%s' in command path '%s'", ErrUnknownArgument, name, commandPath)
			}

			value := ""
			switch {
			case hasInline:
				// a '='-joined value always binds to its flag, regardless of shape
				value = inline
			case option.isBoolean():
				value = "true"
				if isBoolLiteral(state.Peek()) {
					value = state.Peek()
					state.Skip()
				}
			default:
				if state.Pos()+1 >= state.Len() || strings.HasPrefix(state.Peek(), longPrefix) {
					return nil, fmt.Errorf("%w for flag '--%s' in command path '%s'", ErrMissingValue, option.Name, commandPath)
				}
				value = state.Peek()
				state.Skip()
			}
			seen[option.Name] = value
			continue
		}

		// positional candidate
		if posIndex < len(positionals) {
			descriptor := positionals[posIndex]
			switch {
			case descriptor.Raw:
				rawMode = true
				raw = append(raw, current)
			case descriptor.Rest:
				rest = append(rest, current)
			default:
				filled = append(filled, current)
				posIndex++
			}
		} else {
			extras = append(extras, current)
		}
	}

	result := newResult(commandPath)

	// every option not present in the input falls back to its default (or the
	// typed zero value) and runs the same validator chain as explicit input
	for pair := spec.options.Oldest(); pair != nil; pair = pair.Next() {
		option := pair.Value

		var value any
		if explicit, ok := seen[option.Name]; ok {
			coerced, err := util.Coerce(explicit, option.TypeOf, p.listFunc)
			if err != nil {
				return nil, fmt.Errorf("flag '--%s' in command path '%s': %w", option.Name, commandPath, err)
			}
			value = coerced
		} else if option.Default != nil {
			value = option.Default
		} else {
			value = util.ZeroValue(option.TypeOf)
		}

		if message := firstFailure(option.Validators, value); message != "" {
			return nil, fmt.Errorf("%w for flag '--%s': %s", ErrValidation, option.Name, message)
		}
		result.set(option.Name, value)
	}

	for i, descriptor := range positionals {
		var value any
		switch {
		case descriptor.Raw:
			value = append([]string{}, raw...)
		case descriptor.Rest:
			collected, err := coerceElements(rest, descriptor.TypeOf)
			if err != nil {
				return nil, fmt.Errorf("positional '%s' in command path '%s': %w", descriptor.Name, commandPath, err)
			}
			value = collected
		case i < len(filled):
			coerced, err := util.Coerce(filled[i], descriptor.TypeOf, p.listFunc)
			if err != nil {
				return nil, fmt.Errorf("positional '%s' in command path '%s': %w", descriptor.Name, commandPath, err)
			}
			value = coerced
		case descriptor.Default != nil:
			value = descriptor.Default
		default:
			return nil, fmt.Errorf("%w: required positional '%s' at index %d was not supplied", ErrMissingArgument, descriptor.Name, descriptor.Index)
		}

		if message := firstFailure(descriptor.Validators, value); message != "" {
			return nil, fmt.Errorf("%w for positional '%s': %s", ErrValidation, descriptor.Name, message)
		}
		result.set(descriptor.Name, value)
	}

	if len(extras) > 0 {
		return nil, fmt.Errorf("%w '%s' in command path '%s'", ErrUnknownArgument, extras[0], commandPath)
	}

	if command != nil {
		subSpec, err := command.resolve()
		if err != nil {
			return nil, err
		}

		childPath := commandPath + " " + command.Name
		subResult, err := p.parseLevel(subSpec, tail, childPath)
		if err != nil {
			return nil, err
		}

		result.set(command.Name, subResult)
		if command.Callback != nil {
			if p.execOnParse {
				p.callbackResults[childPath] = command.Callback(p, command, subResult)
			} else {
				p.callbackQueue.PushBack(commandCallback{command: command, result: subResult, path: childPath})
			}
		}
	}

	return result, nil
}

// splitAtSubcommand locates the subcommand boundary: the first token which is
// not flag-shaped, is not consumed as a flag value, and exactly matches a
// registered subcommand name. Tokens before the boundary belong to the
// current level; tokens after it are parsed recursively against the
// subcommand's own Spec. The walk uses the same flag-vs-value heuristic as
// the classification scan so that both agree on which tokens a flag consumed.
func splitAtSubcommand(spec *Spec, tokens []string) ([]string, *SubCommand, []string) {
	if spec.commands.Len() == 0 {
		return tokens, nil, nil
	}

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		if isFlagToken(token) {
			if token == helpLong || token == helpShort {
				continue
			}
			name, _, hasInline := splitFlagToken(token)
			if hasInline || i+1 >= len(tokens) {
				continue
			}
			next := tokens[i+1]
			if strings.HasPrefix(next, longPrefix) {
				continue
			}
			if option, found := spec.lookupOption(name); found && option.isBoolean() {
				if isBoolLiteral(next) {
					i++
				}
				continue
			}
			// a value-taking (or unknown) flag is presumed to consume the
			// next token; an unknown flag is reported by the scan either way
			i++
			continue
		}

		if command, found := spec.commands.Get(token); found {
			return tokens[:i], command, tokens[i+1:]
		}
	}

	return tokens, nil, nil
}

// isFlagToken reports whether a token is flag-shaped. A lone "-" counts as a
// positional candidate (conventionally standing for stdin).
func isFlagToken(token string) bool {
	return len(token) > 1 && strings.HasPrefix(token, shortPrefix)
}

// splitFlagToken strips the prefix and separates an inline '='-joined value.
func splitFlagToken(token string) (name, value string, hasValue bool) {
	stripped := strings.TrimPrefix(token, shortPrefix)
	stripped = strings.TrimPrefix(stripped, shortPrefix)

	if eq := strings.IndexRune(stripped, '='); eq >= 0 {
		return stripped[:eq], stripped[eq+1:], true
	}

	return stripped, "", false
}

// isBoolLiteral matches the value tokens a standalone boolean flag may
// consume in space-separated form.
func isBoolLiteral(token string) bool {
	switch token {
	case "true", "false", "0", "1":
		return true
	}

	return false
}

// firstFailure runs a validator chain in declared order - the first non-empty
// message short-circuits the chain and is the reported error.
func firstFailure(validators []ValidatorFunc, value any) string {
	for _, validator := range validators {
		if validator == nil {
			continue
		}
		if message := validator(value); message != "" {
			return message
		}
	}

	return ""
}

// coerceElements coerces rest-collected tokens one element at a time - rest
// tokens are never comma-split.
func coerceElements(tokens []string, typeOf ValueType) (any, error) {
	if typeOf == NumberList {
		values := make([]float64, len(tokens))
		for i, token := range tokens {
			coerced, err := util.Coerce(token, Number, nil)
			if err != nil {
				return nil, err
			}
			values[i] = coerced.(float64)
		}
		return values, nil
	}

	values := make([]string, len(tokens))
	copy(values, tokens)

	return values, nil
}

// pruneExecPathFromArgs removes the executable path when the caller passed
// os.Args verbatim.
func pruneExecPathFromArgs(args *[]string) {
	if len(*args) > 0 && len(os.Args) > 0 && (*args)[0] == os.Args[0] {
		*args = (*args)[1:]
	}
}
