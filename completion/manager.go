package completion

import (
	"fmt"
	"os"
	"path/filepath"
)

// Manager generates and installs completion scripts for a given shell
type Manager struct {
	Shell       string
	ProgramName string
	Paths       CompletionPaths
	generator   Generator
	script      string
}

// NewManager creates a completion manager which can be used to generate and
// save completion scripts for a given shell
func NewManager(shell, programName string) (*Manager, error) {
	paths, err := getCompletionPaths(shell)
	if err != nil {
		return nil, fmt.Errorf("failed to get completion paths: %w", err)
	}

	return &Manager{
		Shell:       shell,
		ProgramName: filepath.Base(programName),
		Paths:       paths,
		generator:   GetGenerator(shell),
	}, nil
}

// Accept generates and stores the completion script from the provided data
func (m *Manager) Accept(data CompletionData) {
	m.script = m.generator.Generate(m.ProgramName, data)
}

// Script returns the previously generated completion script
func (m *Manager) Script() string {
	return m.script
}

// Save writes the previously generated completion script to the shell's
// conventional completion directory
func (m *Manager) Save() error {
	if m.script == "" {
		return fmt.Errorf("no completion script generated")
	}

	if err := m.ensureCompletionPath(); err != nil {
		return err
	}

	path := m.completionFilePath()
	if err := os.WriteFile(path, []byte(m.script), 0644); err != nil {
		return fmt.Errorf("failed to write completion file: %w", err)
	}

	return ensurePermission(path, 0644)
}

func (m *Manager) ensureCompletionPath() error {
	perm := os.FileMode(0755)
	err := os.MkdirAll(m.Paths.Primary, perm)
	if err == nil {
		if err = ensurePermission(m.Paths.Primary, perm); err == nil {
			return nil
		}
	}

	if m.Paths.Fallback != "" {
		if err := os.MkdirAll(m.Paths.Fallback, perm); err != nil {
			return fmt.Errorf("failed to create fallback completion directory: %w", err)
		}
		m.Paths.Primary = m.Paths.Fallback
		return ensurePermission(m.Paths.Primary, perm)
	}

	return fmt.Errorf("failed to create completion directories: %w", err)
}

func (m *Manager) completionFilePath() string {
	return filepath.Join(m.Paths.Primary, m.ProgramName+m.Paths.Extension)
}
