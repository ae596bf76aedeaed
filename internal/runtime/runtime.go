package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Command describes a single external process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// String renders the command line as the user would type it.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// ParseCommandLine splits a whitespace-separated command line such as
// "npm install" into a Command. Quoting is not supported.
func ParseCommandLine(line, dir string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command line")
	}
	return Command{Name: fields[0], Args: fields[1:], Dir: dir}, nil
}

// Runner executes external processes.
type Runner interface {
	// Run executes cmd with the runner's standard streams attached and
	// blocks until it exits. A non-zero exit is returned as *ExitError.
	Run(ctx context.Context, cmd Command) error
	// Output executes cmd and returns its trimmed standard output.
	Output(ctx context.Context, cmd Command) (string, error)
	// LookPath resolves an executable on PATH.
	LookPath(name string) (string, error)
}

// ExitError reports a process that ran but exited with a non-zero status.
type ExitError struct {
	Command  string
	ExitCode int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
}

// ExecRunner is the os/exec backed Runner.
type ExecRunner struct {
	// Stdin, Stdout and Stderr default to the process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner that inherits the terminal's streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command, streaming its output live.
func (r *ExecRunner) Run(ctx context.Context, c Command) error {
	bin, err := exec.LookPath(c.Name)
	if err != nil {
		return fmt.Errorf("%s not found on PATH: %w", c.Name, err)
	}

	cmd := exec.CommandContext(ctx, bin, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = r.stdin()
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Command: c.String(), ExitCode: exitErr.ExitCode()}
		}
		return fmt.Errorf("executing %s: %w", c, err)
	}
	return nil
}

// Output executes the command and captures its standard output. Standard
// error is included in the returned error when the command fails.
func (r *ExecRunner) Output(ctx context.Context, c Command) (string, error) {
	bin, err := exec.LookPath(c.Name)
	if err != nil {
		return "", fmt.Errorf("%s not found on PATH: %w", c.Name, err)
	}

	cmd := exec.CommandContext(ctx, bin, c.Args...)
	cmd.Dir = c.Dir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: %s", &ExitError{Command: c.String(), ExitCode: exitErr.ExitCode()},
				strings.TrimSpace(stderrBuf.String()))
		}
		return "", fmt.Errorf("executing %s: %w", c, err)
	}
	return strings.TrimSpace(stdoutBuf.String()), nil
}

// LookPath resolves name with exec.LookPath.
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *ExecRunner) stdin() io.Reader {
	if r.Stdin == nil {
		return os.Stdin
	}
	return r.Stdin
}

func (r *ExecRunner) stdout() io.Writer {
	if r.Stdout == nil {
		return os.Stdout
	}
	return r.Stdout
}

func (r *ExecRunner) stderr() io.Writer {
	if r.Stderr == nil {
		return os.Stderr
	}
	return r.Stderr
}
