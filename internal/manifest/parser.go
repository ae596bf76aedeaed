package manifest

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ParseFramework unmarshals a framework manifest. source names the data in
// error messages.
func ParseFramework(data []byte, source string) (*FrameworkManifest, error) {
	var m FrameworkManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", source, err)
	}
	return &m, nil
}

// ParseFile reads and parses a framework manifest from disk.
func ParseFile(path string) (*FrameworkManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFramework(data, path)
}

// Load reads the manifest at path in fsys, validates it and returns the
// parsed result. Every problem is reported in a single *InvalidError.
func Load(fsys fs.FS, path string) (*FrameworkManifest, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	report, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", path, err)
	}
	if !report.Valid() {
		return nil, &InvalidError{Source: path, Issues: report.Issues}
	}

	return ParseFramework(data, path)
}

// InvalidError reports a manifest that failed schema validation.
type InvalidError struct {
	Source string
	Issues []Issue
}

func (e *InvalidError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, issue.String())
	}
	return printer.Sprintf("manifest %s has %d issue(s): %s", e.Source, len(e.Issues), strings.Join(msgs, "; "))
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
