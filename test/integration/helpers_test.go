//go:build integration

package integration_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/initwiz/initwiz/internal/runtime"
)

// gitOnlyRunner executes git for real and records every other command
// without running it, so the install step needs no network.
type gitOnlyRunner struct {
	real *runtime.ExecRunner

	mu       sync.Mutex
	recorded []runtime.Command
}

func newGitOnlyRunner() *gitOnlyRunner {
	return &gitOnlyRunner{real: &runtime.ExecRunner{Stdout: os.Stderr, Stderr: os.Stderr}}
}

func (r *gitOnlyRunner) Run(ctx context.Context, cmd runtime.Command) error {
	if cmd.Name == "git" {
		return r.real.Run(ctx, cmd)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recorded = append(r.recorded, cmd)
	return nil
}

func (r *gitOnlyRunner) Output(ctx context.Context, cmd runtime.Command) (string, error) {
	if cmd.Name == "git" {
		return r.real.Output(ctx, cmd)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recorded = append(r.recorded, cmd)
	return "", nil
}

func (r *gitOnlyRunner) LookPath(name string) (string, error) {
	if name == "git" {
		return r.real.LookPath(name)
	}
	return "/usr/bin/" + name, nil
}

func (r *gitOnlyRunner) commands() []runtime.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]runtime.Command(nil), r.recorded...)
}

// requireGit skips the test when git is unavailable and isolates git from
// the user's global configuration.
func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GIT_CONFIG_GLOBAL", filepath.Join(home, ".gitconfig"))
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_AUTHOR_NAME", "initwiz e2e")
	t.Setenv("GIT_AUTHOR_EMAIL", "e2e@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "initwiz e2e")
	t.Setenv("GIT_COMMITTER_EMAIL", "e2e@example.com")
	t.Setenv("npm_config_user_agent", "")
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
	}
}
