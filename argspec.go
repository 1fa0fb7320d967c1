// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package argspec provides declarative command-line processing.
//
// A command is described by a Spec: an ordered set of Option descriptors
// (flags), Positional descriptors (bare tokens filled left-to-right, with
// optional rest/raw terminal collectors) and SubCommand descriptors (verbs
// selecting a nested Spec). A Parser turns a raw token list into a tree of
// typed values mirroring the command hierarchy, or a structured error - it
// never terminates the process itself. Run is the thin adapter which maps a
// fatal result to a printed message and a non-zero exit, and --help/-h to
// rendered usage and exit status zero.
//
// Descriptors may be produced by any collaborator - a builder API, struct
// tags, configuration objects - the engine only consumes the resulting Spec.
package argspec

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ef-ds/deque"
	"github.com/napalu/argspec/completion"
	"github.com/napalu/argspec/parse"
)

// Parser drives the parsing engine over a Spec. A Parser is safe to invoke
// repeatedly - every Parse call builds its result from the descriptors alone,
// with no residual state from earlier invocations.
type Parser struct {
	spec            *Spec
	listFunc        ListDelimiterFunc
	stdout          io.Writer
	stderr          io.Writer
	exitFunc        func(int)
	usageWidth      int
	execOnParse     bool
	callbackQueue   *deque.Deque
	callbackResults map[string]error
}

// NewParser creates a Parser over the given Spec. Structural violations in
// the Spec (or any eagerly supplied subcommand spec) are reported here, once,
// as configuration bugs - never per parse.
func NewParser(spec *Spec, configs ...ConfigureParserFunc) (*Parser, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: can't create a parser without a spec", ErrStructural)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	parser := &Parser{
		spec:            spec,
		listFunc:        matchListSeparators,
		stdout:          os.Stdout,
		stderr:          os.Stderr,
		exitFunc:        os.Exit,
		callbackQueue:   deque.New(),
		callbackResults: map[string]error{},
	}

	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, err
		}
	}

	return parser, nil
}

// Spec returns the root Spec the parser was created with
func (p *Parser) Spec() *Spec {
	return p.spec
}

// Parse converts args - the token list without the executable path - into a
// tree of typed values. On any fatal condition it returns a structured error
// matchable with errors.Is (ErrUnknownArgument, ErrMissingValue,
// ErrInvalidNumber, ErrValidation, ErrMissingArgument, ErrHelpRequested);
// partial results are never returned.
func (p *Parser) Parse(args []string) (*Result, error) {
	p.callbackQueue = deque.New()
	p.callbackResults = map[string]error{}

	return p.parseLevel(p.spec, args, p.spec.AppName)
}

// ParseString tokenizes argString using shell-style quoting rules and calls Parse
func (p *Parser) ParseString(argString string) (*Result, error) {
	args, err := parse.Split(argString)
	if err != nil {
		return nil, err
	}

	return p.Parse(args)
}

// Run is the process adapter around Parse. It accepts os.Args verbatim,
// prints usage and exits with status zero when help was requested, prints a
// single line to stderr and exits with a non-zero status on any fatal
// condition, and otherwise runs the queued command callbacks. Embedders
// wanting full control should call Parse directly.
func (p *Parser) Run(args []string) *Result {
	pruneExecPathFromArgs(&args)

	result, err := p.Parse(args)
	if err != nil {
		var help *HelpRequested
		if errors.As(err, &help) {
			p.printUsageFor(help.Spec, help.CommandPath, p.stdout)
			p.exitFunc(0)
			return nil
		}

		fmt.Fprintln(p.stderr, err.Error())
		p.exitFunc(1)
		return nil
	}

	if p.ExecuteCommands() > 0 {
		for path, cbErr := range p.callbackResults {
			if cbErr != nil {
				fmt.Fprintf(p.stderr, "%s: %s\n", path, cbErr.Error())
			}
		}
		p.exitFunc(1)
		return nil
	}

	return result
}

// ExecuteCommands command callbacks are placed on a FIFO queue during parsing
// until ExecuteCommands is called. Returns the count of errors encountered
// during execution.
func (p *Parser) ExecuteCommands() int {
	callbackErrors := 0
	for p.callbackQueue.Len() > 0 {
		item, _ := p.callbackQueue.PopFront()
		call, ok := item.(commandCallback)
		if !ok || call.command.Callback == nil {
			continue
		}

		err := call.command.Callback(p, call.command, call.result)
		p.callbackResults[call.path] = err
		if err != nil {
			callbackErrors++
		}
	}

	return callbackErrors
}

// ExecuteCommand pops and runs the next queued command callback, returning
// the error which occurred during its execution.
func (p *Parser) ExecuteCommand() error {
	if p.callbackQueue.Len() > 0 {
		item, _ := p.callbackQueue.PopFront()
		if call, ok := item.(commandCallback); ok && call.command.Callback != nil {
			err := call.command.Callback(p, call.command, call.result)
			p.callbackResults[call.path] = err

			return err
		}
	}

	return nil
}

// GetCommandExecutionError returns the error which occurred during execution
// of a command callback after ExecuteCommands has been called. Returns nil on
// no error. Returns a CommandNotFound error when no callback ran for
// commandPath.
func (p *Parser) GetCommandExecutionError(commandPath string) error {
	if err, found := p.callbackResults[commandPath]; found {
		return err
	}

	return fmt.Errorf("%w: %s was not found or has no associated callback", ErrCommandNotFound, commandPath)
}

// PrintUsage pretty prints the root command's usage to the given io.Writer.
func (p *Parser) PrintUsage(writer io.Writer) {
	p.printUsageFor(p.spec, p.spec.AppName, writer)
}

func (p *Parser) printUsageFor(spec *Spec, commandPath string, writer io.Writer) {
	NewRenderer(spec, commandPath, p.usageWidth).WriteUsage(writer)
}

// GetCompletionData populates a completion.CompletionData from the Spec tree.
// Unlike parsing, completion generation resolves every lazy subcommand spec
// eagerly - the whole tree must be enumerated.
func (p *Parser) GetCompletionData() (completion.CompletionData, error) {
	data := completion.CompletionData{
		Commands:            []string{},
		CommandDescriptions: map[string]string{},
		Flags:               []completion.FlagPair{},
		CommandFlags:        map[string][]completion.FlagPair{},
	}

	for pair := p.spec.options.Oldest(); pair != nil; pair = pair.Next() {
		data.Flags = append(data.Flags, flagPairOf(pair.Value))
	}

	err := p.spec.Visit(func(cmd *SubCommand, spec *Spec, path string, level int) bool {
		data.Commands = append(data.Commands, path)
		data.CommandDescriptions[path] = cmd.Description
		for pair := spec.options.Oldest(); pair != nil; pair = pair.Next() {
			data.CommandFlags[path] = append(data.CommandFlags[path], flagPairOf(pair.Value))
		}

		return true
	})

	return data, err
}

func flagPairOf(option *Option) completion.FlagPair {
	return completion.FlagPair{
		Long:        option.Name,
		Short:       option.Short,
		Description: option.Description,
	}
}

// GenerateCompletion generates a completion script for the given shell and
// program name
func (p *Parser) GenerateCompletion(shell, programName string) (string, error) {
	data, err := p.GetCompletionData()
	if err != nil {
		return "", err
	}

	return completion.GetGenerator(shell).Generate(programName, data), nil
}

// GenerateFishCompletion generates a completion script for fish
func (p *Parser) GenerateFishCompletion(programName string) (string, error) {
	return p.GenerateCompletion("fish", programName)
}

// GenerateBashCompletion generates a completion script for bash
func (p *Parser) GenerateBashCompletion(programName string) (string, error) {
	return p.GenerateCompletion("bash", programName)
}
