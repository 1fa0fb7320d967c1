// completion/data.go
package completion

// FlagPair combines the long name, optional short form and description of one flag
type FlagPair struct {
	Long        string
	Short       string
	Description string
}

// CompletionData is used to store the completion data for all configured flags and commands.
// Commands holds the space-joined path of every subcommand in the tree; CommandFlags is keyed
// by those paths.
type CompletionData struct {
	Commands            []string
	CommandDescriptions map[string]string
	Flags               []FlagPair
	CommandFlags        map[string][]FlagPair
}

// Generator produces a completion script for one shell
type Generator interface {
	Generate(programName string, data CompletionData) string
}

// GetGenerator returns the Generator for the given shell, falling back to fish
func GetGenerator(shell string) Generator {
	switch shell {
	case "bash":
		return &BashGenerator{}
	default:
		return &FishGenerator{}
	}
}
