package argspec

import (
	"fmt"
	"io"
)

// WithStdout sets the writer help output is rendered to by Run. Defaults to os.Stdout.
func WithStdout(writer io.Writer) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if writer == nil {
			*err = fmt.Errorf("%w: stdout writer can't be nil", ErrStructural)
			return
		}
		parser.stdout = writer
	}
}

// WithStderr sets the writer fatal errors are reported to by Run. Defaults to os.Stderr.
func WithStderr(writer io.Writer) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if writer == nil {
			*err = fmt.Errorf("%w: stderr writer can't be nil", ErrStructural)
			return
		}
		parser.stderr = writer
	}
}

// WithExitFunc replaces the process termination function used by Run - useful
// when embedding the parser in tests. Defaults to os.Exit.
func WithExitFunc(exitFunc func(code int)) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if exitFunc == nil {
			*err = fmt.Errorf("%w: exit function can't be nil", ErrStructural)
			return
		}
		parser.exitFunc = exitFunc
	}
}

// WithExecOnParse when true, command callbacks run as soon as their command
// is matched during Parse instead of being queued for ExecuteCommands.
func WithExecOnParse(execOnParse bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.execOnParse = execOnParse
	}
}

// WithListDelimiterFunc sets the runes list-typed option values split on.
// Defaults to ',' only.
func WithListDelimiterFunc(delimiterFunc ListDelimiterFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if delimiterFunc == nil {
			*err = fmt.Errorf("%w: list delimiter function can't be nil", ErrStructural)
			return
		}
		parser.listFunc = delimiterFunc
	}
}

// WithUsageWidth fixes the column width help text is wrapped to. When unset
// the width of the attached terminal is used.
func WithUsageWidth(width int) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.usageWidth = width
	}
}
