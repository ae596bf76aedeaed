package pkgmanager

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Manager identifies a package manager.
type Manager string

// Supported package managers.
const (
	NPM  Manager = "npm"
	Yarn Manager = "yarn"
	PNPM Manager = "pnpm"
	Bun  Manager = "bun"
)

// DefaultInstallCommand is used when no install command can be resolved.
const DefaultInstallCommand = "npm install"

// All lists every known package manager in menu order.
var All = []Manager{NPM, Yarn, PNPM, Bun}

// lockfiles maps lockfile names to their package manager, checked in order.
var lockfiles = []struct {
	name    string
	manager Manager
}{
	{"pnpm-lock.yaml", PNPM},
	{"yarn.lock", Yarn},
	{"bun.lockb", Bun},
	{"bun.lock", Bun},
	{"package-lock.json", NPM},
	{"npm-shrinkwrap.json", NPM},
}

// userAgentEnv is set by every package manager for the scripts it spawns.
const userAgentEnv = "npm_config_user_agent"

// String returns the manager's binary name.
func (m Manager) String() string { return string(m) }

// Parse returns the Manager named by s (case-insensitive).
func Parse(s string) (Manager, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range All {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// Detect guesses which package manager dir already uses. It consults, in
// order, the corepack "packageManager" field of package.json, lockfiles, and
// the npm_config_user_agent variable of the invoking package manager.
func Detect(dir string) (Manager, bool) {
	if m, ok := fromPackageJSON(dir); ok {
		return m, true
	}
	for _, lf := range lockfiles {
		if _, err := os.Stat(filepath.Join(dir, lf.name)); err == nil {
			return lf.manager, true
		}
	}
	return FromUserAgent(os.Getenv(userAgentEnv))
}

// fromPackageJSON reads the corepack field, e.g. "pnpm@8.15.0".
func fromPackageJSON(dir string) (Manager, bool) {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return "", false
	}
	var pkg struct {
		PackageManager string `json:"packageManager"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil || pkg.PackageManager == "" {
		return "", false
	}
	name, _, _ := strings.Cut(pkg.PackageManager, "@")
	return Parse(name)
}

// FromUserAgent parses an npm_config_user_agent value such as
// "pnpm/8.15.0 npm/? node/v20.11.1 linux x64".
func FromUserAgent(ua string) (Manager, bool) {
	first, _, _ := strings.Cut(strings.TrimSpace(ua), " ")
	name, _, _ := strings.Cut(first, "/")
	if name == "" {
		return "", false
	}
	return Parse(name)
}

// InstallCommand returns the dependency install command for pm, or the
// empty string when pm is not a known package manager. Lockfiles in the
// project are not consulted: the chosen manager wins.
func InstallCommand(pm string) string {
	m, ok := Parse(pm)
	if !ok {
		return ""
	}
	switch m {
	case NPM:
		return "npm install"
	case Yarn:
		return "yarn install"
	case PNPM:
		return "pnpm install"
	case Bun:
		return "bun install"
	}
	return ""
}

// RunScript returns the command that runs a package.json script.
func RunScript(pm, script string) string {
	m, ok := Parse(pm)
	if !ok {
		m = NPM
	}
	switch m {
	case Yarn, PNPM:
		return string(m) + " " + script
	default:
		return string(m) + " run " + script
	}
}

// Contains reports whether pm is in list.
func Contains(list []string, pm string) bool {
	for _, s := range list {
		if strings.EqualFold(s, pm) {
			return true
		}
	}
	return false
}
