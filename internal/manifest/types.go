package manifest

// Framework kinds.
const (
	// KindTemplate frameworks render an embedded template tree.
	KindTemplate = "template"
	// KindGenerator frameworks delegate to the framework's own generator CLI.
	KindGenerator = "generator"
)

// FrameworkManifest describes one supported framework.
type FrameworkManifest struct {
	Name            string         `yaml:"name" json:"name"`
	DisplayName     string         `yaml:"display_name" json:"display_name"`
	Description     string         `yaml:"description,omitempty" json:"description,omitempty"`
	Kind            string         `yaml:"kind" json:"kind"`
	Node            string         `yaml:"node" json:"node"`
	PackageManagers []string       `yaml:"package_managers" json:"package_managers"`
	DevScript       string         `yaml:"dev_script,omitempty" json:"dev_script,omitempty"`
	Executable      []string       `yaml:"executable,omitempty" json:"executable,omitempty"`
	Generator       *GeneratorSpec `yaml:"generator,omitempty" json:"generator,omitempty"`
}

// GeneratorSpec is the external command a generator framework runs.
// Args may reference {{.ProjectName}}, {{.ProjectPath}} and {{.PackageManager}}.
type GeneratorSpec struct {
	Command string   `yaml:"command" json:"command"`
	Args    []string `yaml:"args,omitempty" json:"args,omitempty"`
}
