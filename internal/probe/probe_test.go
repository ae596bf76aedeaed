package probe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/initwiz/initwiz/internal/pkgmanager"
	"github.com/initwiz/initwiz/internal/runtime"
	"github.com/initwiz/initwiz/internal/runtime/runtimetest"
)

func TestIsDirectoryNotEmpty(t *testing.T) {
	root := t.TempDir()

	empty := filepath.Join(root, "empty")
	if err := os.Mkdir(empty, 0755); err != nil {
		t.Fatal(err)
	}
	full := filepath.Join(root, "full")
	if err := os.Mkdir(full, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(full, "index.js"), []byte(""), 0644); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(root, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"missing path", filepath.Join(root, "nope"), false},
		{"empty directory", empty, false},
		{"directory with entries", full, true},
		{"regular file", file, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDirectoryNotEmpty(tt.path); got != tt.want {
				t.Errorf("IsDirectoryNotEmpty(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestGetPackageManager(t *testing.T) {
	t.Setenv("npm_config_user_agent", "")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "yarn.lock"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	got, ok := GetPackageManager(dir)
	if !ok || got != pkgmanager.Yarn {
		t.Errorf("GetPackageManager() = (%q, %v), want (yarn, true)", got, ok)
	}
}

func TestIsNodeVersionCompatible(t *testing.T) {
	tests := []struct {
		name    string
		running string
		minimum string
		want    bool
	}{
		{"newer major", "20.11.1", "18.0.0", true},
		{"equal", "18.0.0", "18.0.0", true},
		{"older minor", "18.16.0", "18.17.0", false},
		{"older major", "16.20.2", "18.0.0", false},
		{"v prefix running", "v20.0.0", "18.0.0", true},
		{"v prefix minimum", "20.0.0", "v20.1.0", false},
		{"short minimum", "14.21.3", "14", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := WithNodeVersion(func(context.Context) (string, error) { return tt.running, nil })

			got, err := p.IsNodeVersionCompatible(context.Background(), tt.minimum)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsNodeVersionCompatible(%q) with node %q = %v, want %v", tt.minimum, tt.running, got, tt.want)
			}
		})
	}
}

func TestIsNodeVersionCompatible_NodeMissing(t *testing.T) {
	fake := runtimetest.New()
	fake.Missing["node"] = true

	ok, err := New(fake).IsNodeVersionCompatible(context.Background(), "18.0.0")
	if ok {
		t.Error("missing node must not be compatible")
	}
	if !errors.Is(err, runtime.ErrNodeNotFound) {
		t.Errorf("expected ErrNodeNotFound, got %v", err)
	}
}

func TestIsNodeVersionCompatible_UsesRunner(t *testing.T) {
	fake := runtimetest.New()
	fake.Outputs["node --version"] = "v22.2.0"

	ok, err := New(fake).IsNodeVersionCompatible(context.Background(), "20.0.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("node 22.2.0 should satisfy 20.0.0")
	}
}

func TestIsNodeVersionCompatible_Unparsable(t *testing.T) {
	p := WithNodeVersion(func(context.Context) (string, error) { return "nightly", nil })

	ok, err := p.IsNodeVersionCompatible(context.Background(), "18.0.0")
	if ok || err == nil {
		t.Errorf("expected incompatible with error, got (%v, %v)", ok, err)
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
		wantErr  bool
	}{
		{"older patch", "1.0.0", "1.0.1", -1, false},
		{"equal", "1.2.3", "1.2.3", 0, false},
		{"newer", "1.1.0", "1.0.0", 1, false},
		{"v prefix both", "v1.0.0", "v1.0.1", -1, false},
		{"prerelease less than release", "20.0.0-nightly", "20.0.0", -1, false},
		{"invalid", "notaversion", "1.0.0", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompareVersions(tt.a, tt.b)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}
