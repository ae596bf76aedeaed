package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/framework.schema.json
var schemaBytes []byte

const schemaURL = "framework.schema.json"

var printer = message.NewPrinter(language.English)

var schemaState struct {
	once   sync.Once
	schema *jsonschema.Schema
	err    error
}

// Issue is one problem found in a descriptor.
type Issue struct {
	Path    string // JSON pointer into the descriptor, e.g. "/package_managers/1"
	Keyword string // failing schema keyword, or "semantic"
	Message string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Report lists every issue found in one descriptor.
type Report struct {
	Issues []Issue
}

// Valid reports whether no issues were found.
func (r *Report) Valid() bool { return len(r.Issues) == 0 }

func compiledSchema() (*jsonschema.Schema, error) {
	schemaState.once.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			schemaState.err = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaState.err = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		if schemaState.schema, err = c.Compile(schemaURL); err != nil {
			schemaState.err = fmt.Errorf("compiling schema: %w", err)
		}
	})
	return schemaState.schema, schemaState.err
}

// Validate checks a YAML descriptor against the embedded schema and, once
// its shape is right, against the rules the schema cannot express. The
// error return is for unreadable input; problems with the descriptor
// itself are listed in the Report.
func Validate(data []byte) (*Report, error) {
	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	inst, err := decodeInstance(data)
	if err != nil {
		return nil, err
	}

	if err := schema.Validate(inst); err != nil {
		var verr *jsonschema.ValidationError
		if !errors.As(err, &verr) {
			return nil, fmt.Errorf("validating descriptor: %w", err)
		}
		return &Report{Issues: schemaIssues(verr)}, nil
	}

	m, err := ParseFramework(data, "descriptor")
	if err != nil {
		return nil, err
	}
	return &Report{Issues: semanticIssues(m)}, nil
}

// ValidateFile reads a descriptor from disk and validates it.
func ValidateFile(path string) (*Report, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Validate(data)
}

// decodeInstance turns YAML into the JSON value model the validator expects.
func decodeInstance(data []byte) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	jsonData, err := json.Marshal(jsonCompatible(raw))
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}
	return inst, nil
}

// schemaIssues flattens the error tree to its leaves. Container keywords
// are dropped so an if/then failure names the missing property instead.
func schemaIssues(root *jsonschema.ValidationError) []Issue {
	var issues []Issue
	seen := make(map[Issue]bool)

	var walk func(ve *jsonschema.ValidationError)
	walk = func(ve *jsonschema.ValidationError) {
		for _, cause := range ve.Causes {
			walk(cause)
		}
		if len(ve.Causes) > 0 || ve.ErrorKind == nil {
			return
		}

		kw := ve.ErrorKind.KeywordPath()
		if len(kw) == 0 {
			return
		}
		switch keyword := kw[len(kw)-1]; keyword {
		case "then", "oneOf", "allOf", "$ref":
			return
		default:
			issue := Issue{
				Path:    pointer(ve.InstanceLocation),
				Keyword: keyword,
				Message: ve.ErrorKind.LocalizedString(printer),
			}
			if !seen[issue] {
				seen[issue] = true
				issues = append(issues, issue)
			}
		}
	}
	walk(root)

	if len(issues) == 0 {
		return []Issue{{Message: root.Error()}}
	}
	return issues
}

// semanticIssues checks a schema-valid descriptor.
func semanticIssues(m *FrameworkManifest) []Issue {
	var issues []Issue
	add := func(p, format string, a ...any) {
		issues = append(issues, Issue{Path: p, Keyword: "semantic", Message: printer.Sprintf(format, a...)})
	}

	if _, err := semver.NewVersion(strings.TrimPrefix(m.Node, "v")); err != nil {
		add("/node", "%q is not a semantic version: %v", m.Node, err)
	}

	for i, p := range m.Executable {
		clean := path.Clean(p)
		if path.IsAbs(p) || clean != p || clean == ".." || strings.HasPrefix(clean, "../") {
			add(fmt.Sprintf("/executable/%d", i), "%q must be a clean path inside the template", p)
		}
	}

	if m.Kind == KindTemplate && m.Generator != nil {
		add("/generator", "only %s frameworks declare a generator", KindGenerator)
	}
	if m.Generator != nil {
		for i, arg := range m.Generator.Args {
			if _, err := template.New("arg").Parse(arg); err != nil {
				add(fmt.Sprintf("/generator/args/%d", i), "argument does not parse as a template: %v", err)
			}
		}
	}
	return issues
}

func pointer(loc []string) string {
	if len(loc) == 0 {
		return ""
	}
	return "/" + strings.Join(loc, "/")
}

// jsonCompatible rewrites decoded YAML so it can be marshaled to JSON.
func jsonCompatible(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, v := range val {
			m[k] = jsonCompatible(v)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, v := range val {
			m[fmt.Sprint(k)] = jsonCompatible(v)
		}
		return m
	case []any:
		a := make([]any, len(val))
		for i, v := range val {
			a[i] = jsonCompatible(v)
		}
		return a
	default:
		return val
	}
}
