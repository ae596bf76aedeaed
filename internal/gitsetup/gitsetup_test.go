package gitsetup

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/initwiz/initwiz/internal/runtime"
	"github.com/initwiz/initwiz/internal/runtime/runtimetest"
)

func TestRun_StepOrder(t *testing.T) {
	fake := runtimetest.New()
	s := &Setup{ProjectName: "shop", ProjectPath: "/tmp/shop", Framework: "React", Runner: fake}

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := []string{
		"git init",
		"git add -A",
		"git commit -m Initial commit: shop (React) scaffolded by initwiz",
	}
	got := fake.Lines()
	if len(got) != len(want) {
		t.Fatalf("ran %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %q, want %q", i, got[i], want[i])
		}
		if fake.Calls[i].Dir != "/tmp/shop" {
			t.Errorf("command %d Dir = %q, want /tmp/shop", i, fake.Calls[i].Dir)
		}
	}
}

func TestRun_CustomMessage(t *testing.T) {
	fake := runtimetest.New()
	s := &Setup{ProjectName: "shop", Framework: "Vue", Runner: fake, CommitMessage: "chore: bootstrap"}

	if err := s.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	cmd, ok := fake.Find("git commit")
	if !ok {
		t.Fatal("git commit not run")
	}
	if cmd.Args[len(cmd.Args)-1] != "chore: bootstrap" {
		t.Errorf("commit message = %q", cmd.Args[len(cmd.Args)-1])
	}
}

func TestRun_GitMissing(t *testing.T) {
	fake := runtimetest.New()
	fake.Missing["git"] = true
	s := &Setup{ProjectName: "shop", Runner: fake}

	if err := s.Run(context.Background()); !errors.Is(err, ErrGitNotFound) {
		t.Fatalf("Run() = %v, want ErrGitNotFound", err)
	}
	if len(fake.Calls) != 0 {
		t.Errorf("no command should run, got %v", fake.Lines())
	}
}

func TestRun_StepFailureStops(t *testing.T) {
	tests := []struct {
		failing  string
		wantStep string
		wantRuns int
	}{
		{"git init", "init", 1},
		{"git add", "add", 2},
		{"git commit", "commit", 3},
	}

	for _, tt := range tests {
		t.Run(tt.wantStep, func(t *testing.T) {
			fake := runtimetest.New()
			cause := &runtime.ExitError{Command: tt.failing, ExitCode: 128}
			fake.Errors[tt.failing] = cause
			s := &Setup{ProjectName: "shop", Framework: "React", Runner: fake}

			err := s.Run(context.Background())
			var stepErr *StepError
			if !errors.As(err, &stepErr) {
				t.Fatalf("Run() = %v, want *StepError", err)
			}
			if stepErr.Step != tt.wantStep {
				t.Errorf("Step = %q, want %q", stepErr.Step, tt.wantStep)
			}
			if !errors.Is(err, cause) {
				t.Error("StepError should unwrap to the runner error")
			}
			if len(fake.Calls) != tt.wantRuns {
				t.Errorf("ran %d commands, want %d: %v", len(fake.Calls), tt.wantRuns, fake.Lines())
			}
		})
	}
}

func TestRun_NoRunner(t *testing.T) {
	s := &Setup{ProjectName: "shop"}
	if err := s.Run(context.Background()); err == nil {
		t.Fatal("expected error without a runner")
	}
}

func TestRun_RealGit(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GIT_CONFIG_GLOBAL", filepath.Join(home, ".gitconfig"))
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_AUTHOR_NAME", "initwiz test")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "initwiz test")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")

	project := filepath.Join(t.TempDir(), "shop")
	if err := os.MkdirAll(project, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(project, "package.json"), []byte("{}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	runner := runtime.NewExecRunner()
	s := &Setup{ProjectName: "shop", ProjectPath: project, Framework: "Express", Runner: runner}
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	subject, err := runner.Output(context.Background(), runtime.Command{
		Name: "git", Args: []string{"log", "-1", "--format=%s"}, Dir: project,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(subject, "Initial commit: shop (Express)") {
		t.Errorf("last commit subject = %q", subject)
	}
}
