package probe

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/initwiz/initwiz/internal/pkgmanager"
	"github.com/initwiz/initwiz/internal/runtime"
)

// VersionFunc returns the running Node.js version.
type VersionFunc func(ctx context.Context) (string, error)

// Probe inspects the local environment.
type Probe struct {
	nodeVersion VersionFunc
}

// New returns a Probe that asks r for the Node.js version.
func New(r runtime.Runner) *Probe {
	return &Probe{
		nodeVersion: func(ctx context.Context) (string, error) {
			return runtime.NodeVersion(ctx, r)
		},
	}
}

// WithNodeVersion returns a Probe whose Node.js version comes from fn.
func WithNodeVersion(fn VersionFunc) *Probe {
	return &Probe{nodeVersion: fn}
}

// IsDirectoryNotEmpty reports whether path exists and has entries. A missing
// path is empty. A regular file at path counts as not empty since nothing
// can be scaffolded there.
func IsDirectoryNotEmpty(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return true
	}
	entries, err := os.ReadDir(path)
	return err == nil && len(entries) > 0
}

// GetPackageManager returns the package manager cwd appears to use.
func GetPackageManager(cwd string) (pkgmanager.Manager, bool) {
	return pkgmanager.Detect(cwd)
}

// NodeVersion returns the running Node.js version.
func (p *Probe) NodeVersion(ctx context.Context) (string, error) {
	return p.nodeVersion(ctx)
}

// IsNodeVersionCompatible reports whether the running Node.js version is at
// least minVersion. An absent or unparsable runtime is incompatible and the
// error says why.
func (p *Probe) IsNodeVersionCompatible(ctx context.Context, minVersion string) (bool, error) {
	current, err := p.nodeVersion(ctx)
	if err != nil {
		return false, err
	}
	cmp, err := CompareVersions(current, minVersion)
	if err != nil {
		return false, err
	}
	return cmp >= 0, nil
}

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}
