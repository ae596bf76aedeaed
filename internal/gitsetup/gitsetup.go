// Package gitsetup creates the first commit of a freshly scaffolded project.
package gitsetup

import (
	"context"
	"errors"
	"fmt"

	"github.com/initwiz/initwiz/internal/branding"
	"github.com/initwiz/initwiz/internal/runtime"
)

// GitBinary is the executable every step runs.
const GitBinary = "git"

// ErrGitNotFound is returned when git is not on PATH.
var ErrGitNotFound = errors.New("git executable not found on PATH")

// StepError reports which git step failed.
type StepError struct {
	Step string // "init", "add" or "commit"
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("git %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Setup initializes a repository at ProjectPath and commits its contents.
type Setup struct {
	ProjectName string
	ProjectPath string
	Framework   string
	Runner      runtime.Runner
	// CommitMessage overrides DefaultMessage when set.
	CommitMessage string
}

// DefaultMessage returns the commit message used when none is configured.
func DefaultMessage(projectName, framework string) string {
	return fmt.Sprintf("Initial commit: %s (%s) scaffolded by %s", projectName, framework, branding.CLIName())
}

// Message returns the commit message Run will use.
func (s *Setup) Message() string {
	if s.CommitMessage != "" {
		return s.CommitMessage
	}
	return DefaultMessage(s.ProjectName, s.Framework)
}

// Run executes git init, git add -A and git commit in order, stopping at
// the first failure. Nothing is rolled back.
func (s *Setup) Run(ctx context.Context) error {
	if s.Runner == nil {
		return fmt.Errorf("git setup needs a process runner")
	}
	if _, err := s.Runner.LookPath(GitBinary); err != nil {
		return ErrGitNotFound
	}

	steps := []struct {
		name string
		args []string
	}{
		{"init", []string{"init"}},
		{"add", []string{"add", "-A"}},
		{"commit", []string{"commit", "-m", s.Message()}},
	}

	for _, step := range steps {
		cmd := runtime.Command{Name: GitBinary, Args: step.args, Dir: s.ProjectPath}
		if _, err := s.Runner.Output(ctx, cmd); err != nil {
			return &StepError{Step: step.name, Err: err}
		}
	}
	return nil
}
