// Package runtimetest provides a scripted runtime.Runner for tests.
package runtimetest

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/initwiz/initwiz/internal/runtime"
)

// Fake records every command and answers from programmable tables keyed by
// the command line (e.g. "git commit -m msg").
type Fake struct {
	mu sync.Mutex

	// Calls holds every command passed to Run or Output, in order.
	Calls []runtime.Command

	// Errors maps a command line prefix to the error Run/Output returns.
	Errors map[string]error
	// Outputs maps a command line prefix to the stdout Output returns.
	Outputs map[string]string
	// Missing lists binaries LookPath reports as absent.
	Missing map[string]bool
	// OnRun, if set, is invoked for every successful Run call.
	OnRun func(cmd runtime.Command) error
}

// New returns an empty Fake where every command succeeds.
func New() *Fake {
	return &Fake{
		Errors:  map[string]error{},
		Outputs: map[string]string{},
		Missing: map[string]bool{},
	}
}

// Run records cmd and returns the scripted error, if any.
func (f *Fake) Run(_ context.Context, cmd runtime.Command) error {
	f.record(cmd)
	if err := f.lookup(cmd); err != nil {
		return err
	}
	if f.OnRun != nil {
		return f.OnRun(cmd)
	}
	return nil
}

// Output records cmd and returns the scripted output or error.
func (f *Fake) Output(_ context.Context, cmd runtime.Command) (string, error) {
	f.record(cmd)
	if err := f.lookup(cmd); err != nil {
		return "", err
	}
	line := cmd.String()
	for prefix, out := range f.Outputs {
		if strings.HasPrefix(line, prefix) {
			return out, nil
		}
	}
	return "", nil
}

// LookPath reports every binary as present unless listed in Missing.
func (f *Fake) LookPath(name string) (string, error) {
	if f.Missing[name] {
		return "", fmt.Errorf("%s: %w", name, exec.ErrNotFound)
	}
	return "/usr/bin/" + name, nil
}

// Lines returns the recorded command lines.
func (f *Fake) Lines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	lines := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		lines[i] = c.String()
	}
	return lines
}

// Ran reports whether any recorded command line starts with prefix.
func (f *Fake) Ran(prefix string) bool {
	for _, l := range f.Lines() {
		if strings.HasPrefix(l, prefix) {
			return true
		}
	}
	return false
}

// Find returns the first recorded command whose line starts with prefix.
func (f *Fake) Find(prefix string) (runtime.Command, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.Calls {
		if strings.HasPrefix(c.String(), prefix) {
			return c, true
		}
	}
	return runtime.Command{}, false
}

func (f *Fake) record(cmd runtime.Command) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, cmd)
}

func (f *Fake) lookup(cmd runtime.Command) error {
	line := cmd.String()
	for prefix, err := range f.Errors {
		if strings.HasPrefix(line, prefix) {
			return err
		}
	}
	return nil
}
