package parse

import "errors"

// State represents a cursor over the token stream being parsed. Each command
// level owns its own State; recursion into a subcommand starts a fresh one
// over the tokens past the subcommand boundary.
type State interface {
	Pos() int                      // Get the current position
	SetPos(pos int)                // Set the current position
	Skip()                         // Skip the next argument
	Args() []string                // Get the entire argument list
	CurrentArg() string            // Get the current argument
	ArgAt(pos int) (string, error) // Get the argument at a specific position
	Peek() string                  // Peek at the next argument
	Advance() bool                 // Advance to the next argument
	Remaining() []string           // Get the arguments past the current position
	Len() int                      // Get the length of the argument list
}

// ErrInvalidPosition is an error that occurs when an invalid position is accessed
var ErrInvalidPosition = errors.New("invalid position")

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a new State instance over the given argument list
func NewState(args []string) State {
	return &DefaultState{
		pos:  -1,
		args: args,
	}
}

// Pos returns the current position in the argument list
func (s *DefaultState) Pos() int {
	return s.pos
}

// SetPos sets the current position in the argument list
func (s *DefaultState) SetPos(pos int) {
	s.pos = pos
}

// Skip advances the current position past the next argument
func (s *DefaultState) Skip() {
	s.pos++
}

// Args returns the entire argument list
func (s *DefaultState) Args() []string {
	return s.args
}

// CurrentArg returns the current argument
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}
	return s.args[s.pos]
}

// ArgAt returns the argument at a specific position
func (s *DefaultState) ArgAt(pos int) (string, error) {
	if pos < 0 || pos >= len(s.args) {
		return "", ErrInvalidPosition
	}

	return s.args[pos], nil
}

// Peek returns the next argument without advancing the current position
func (s *DefaultState) Peek() string {
	if s.pos+1 < len(s.args) {
		return s.args[s.pos+1]
	}

	return ""
}

// Advance advances to the next argument, returning true if successful
func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}
	return false
}

// Remaining returns the arguments past the current position
func (s *DefaultState) Remaining() []string {
	if s.pos+1 >= len(s.args) {
		return nil
	}

	return s.args[s.pos+1:]
}

// Len returns the length of the argument list
func (s *DefaultState) Len() int {
	return len(s.args)
}
