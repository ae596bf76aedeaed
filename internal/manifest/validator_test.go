package manifest

import (
	"path/filepath"
	"testing"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestValidateFile_ValidManifests(t *testing.T) {
	validFiles := []string{
		"valid-template.yaml",
		"valid-generator.yaml",
	}

	for _, file := range validFiles {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid() {
				t.Errorf("expected valid, got invalid with %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidateFile_InvalidManifests(t *testing.T) {
	invalidFiles := []struct {
		file string
		desc string
	}{
		{"invalid-missing-node.yaml", "missing required node field"},
		{"invalid-bad-name-pattern.yaml", "name violates pattern"},
		{"invalid-unknown-manager.yaml", "package manager outside the enum"},
		{"invalid-generator-without-command.yaml", "generator kind without generator block"},
		{"invalid-executable-escapes.yaml", "executable path leaves the template"},
		{"invalid-generator-arg-template.yaml", "generator argument is not a template"},
		{"invalid-template-with-generator.yaml", "template kind declaring a generator"},
	}

	for _, tt := range invalidFiles {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid() {
				t.Errorf("expected invalid for %s (%s), but got valid", tt.file, tt.desc)
			}
			if len(result.Issues) == 0 {
				t.Errorf("expected at least one issue for %s (%s)", tt.file, tt.desc)
			}
		})
	}
}

func TestValidateFile_InvalidYAML(t *testing.T) {
	_, err := ValidateFile(testPath("invalid-not-yaml.yaml"))
	if err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	_, err := ValidateFile(testPath("nonexistent.yaml"))
	if err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestValidate_IssueFields(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-bad-name-pattern.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if result.Valid() {
		t.Fatal("expected invalid result")
	}

	found := false
	for _, issue := range result.Issues {
		if issue.Path == "/name" && issue.Message != "" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an issue at /name with a message, got %+v", result.Issues)
	}
}

func TestValidate_SemanticIssues(t *testing.T) {
	tests := []struct {
		file string
		path string
	}{
		{"invalid-executable-escapes.yaml", "/executable/0"},
		{"invalid-generator-arg-template.yaml", "/generator/args/1"},
		{"invalid-template-with-generator.yaml", "/generator"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatal(err)
			}
			if len(result.Issues) != 1 {
				t.Fatalf("expected one issue, got %+v", result.Issues)
			}
			issue := result.Issues[0]
			if issue.Path != tt.path || issue.Keyword != "semantic" {
				t.Errorf("issue = %+v, want semantic issue at %s", issue, tt.path)
			}
		})
	}
}

func TestIssueString(t *testing.T) {
	if got := (Issue{Path: "/node", Message: "bad"}).String(); got != "/node: bad" {
		t.Errorf("String() = %q", got)
	}
	if got := (Issue{Message: "bad"}).String(); got != "bad" {
		t.Errorf("String() = %q", got)
	}
}

func TestValidate_SchemaCompiles(t *testing.T) {
	schema, err := compiledSchema()
	if err != nil {
		t.Fatalf("compiledSchema() error: %v", err)
	}
	if schema == nil {
		t.Fatal("compiledSchema() returned nil schema")
	}
}
