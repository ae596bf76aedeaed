package framework

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/initwiz/initwiz/internal/manifest"
	"github.com/initwiz/initwiz/internal/prompt"
)

//go:embed descriptors/*.yaml
var descriptorFS embed.FS

//go:embed all:templates
var templateFS embed.FS

// UnknownFrameworkError is returned by Resolve for names with no entry.
type UnknownFrameworkError struct {
	Name string
}

func (e *UnknownFrameworkError) Error() string {
	return fmt.Sprintf("%s is not a valid platform", e.Name)
}

type entry struct {
	desc    *Descriptor
	factory Factory
}

// Registry maps lower-cased framework identifiers to handler factories.
type Registry struct {
	entries map[string]entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds a framework. Names are case-insensitive and must be unique.
func (r *Registry) Register(desc *Descriptor, factory Factory) error {
	key := strings.ToLower(desc.Name)
	if key == "" {
		return fmt.Errorf("framework descriptor has no name")
	}
	if _, exists := r.entries[key]; exists {
		return fmt.Errorf("framework %q is already registered", key)
	}
	r.entries[key] = entry{desc: desc, factory: factory}
	return nil
}

// Resolve looks up a framework by identifier (case-insensitive).
func (r *Registry) Resolve(name string) (Factory, *Descriptor, error) {
	e, ok := r.entries[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, nil, &UnknownFrameworkError{Name: name}
	}
	return e.factory, e.desc, nil
}

// Descriptors returns every registered descriptor sorted by name.
func (r *Registry) Descriptors() []*Descriptor {
	out := make([]*Descriptor, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.desc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Choices returns one menu entry per framework, sorted by identifier.
func (r *Registry) Choices() []prompt.Choice {
	descs := r.Descriptors()
	out := make([]prompt.Choice, len(descs))
	for i, d := range descs {
		out[i] = prompt.Choice{Value: d.Name, Label: d.DisplayName}
	}
	return out
}

// Len returns the number of registered frameworks.
func (r *Registry) Len() int { return len(r.entries) }

// DefaultRegistry loads and validates the embedded descriptors and
// registers a handler for each.
func DefaultRegistry() (*Registry, error) {
	templates, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("opening embedded templates: %w", err)
	}
	return LoadRegistry(descriptorFS, "descriptors", templates)
}

// LoadRegistry builds a registry from the *.yaml descriptors in dir of
// descFS. Template frameworks render templates/<name> of templates.
func LoadRegistry(descFS fs.FS, dir string, templates fs.FS) (*Registry, error) {
	paths, err := fs.Glob(descFS, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("listing framework descriptors: %w", err)
	}

	r := NewRegistry()
	for _, p := range paths {
		desc, err := manifest.Load(descFS, p)
		if err != nil {
			return nil, err
		}

		var factory Factory
		switch desc.Kind {
		case manifest.KindTemplate:
			if _, err := fs.Stat(templates, desc.Name); err != nil {
				return nil, fmt.Errorf("framework %s has no template set: %w", desc.Name, err)
			}
			factory = TemplateFactory(desc, templates)
		case manifest.KindGenerator:
			factory = GeneratorFactory(desc)
		default:
			return nil, fmt.Errorf("framework %s has unsupported kind %q", desc.Name, desc.Kind)
		}

		if err := r.Register(desc, factory); err != nil {
			return nil, err
		}
	}
	return r, nil
}
