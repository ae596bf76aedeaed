package framework

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/initwiz/initwiz/internal/runtime"
)

// GeneratorHandler delegates scaffolding to the framework's own CLI.
type GeneratorHandler struct {
	desc *Descriptor
	opts Options
}

// GeneratorFactory returns a Factory producing GeneratorHandlers for desc.
func GeneratorFactory(desc *Descriptor) Factory {
	return func(opts Options) Handler {
		return &GeneratorHandler{desc: desc, opts: opts}
	}
}

// Node returns the descriptor's minimum Node.js version.
func (h *GeneratorHandler) Node() string { return h.desc.Node }

// SupportedPackageManagers returns the descriptor's package managers.
func (h *GeneratorHandler) SupportedPackageManagers() []string { return h.desc.PackageManagers }

// generatorArgs is the data generator arguments are rendered against.
type generatorArgs struct {
	ProjectName    string
	ProjectPath    string
	PackageManager string
}

// Command returns the generator invocation for this session. It runs in
// the parent of the project path.
func (h *GeneratorHandler) Command() (runtime.Command, error) {
	if h.desc.Generator == nil {
		return runtime.Command{}, fmt.Errorf("framework %s declares no generator", h.desc.Name)
	}

	data := generatorArgs{
		ProjectName:    h.opts.ProjectName,
		ProjectPath:    h.opts.ProjectPath,
		PackageManager: h.opts.PackageManager,
	}

	args := make([]string, 0, len(h.desc.Generator.Args))
	for i, raw := range h.desc.Generator.Args {
		tmpl, err := template.New(fmt.Sprintf("arg%d", i)).Option("missingkey=error").Parse(raw)
		if err != nil {
			return runtime.Command{}, fmt.Errorf("parsing generator argument %q: %w", raw, err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return runtime.Command{}, fmt.Errorf("rendering generator argument %q: %w", raw, err)
		}
		args = append(args, buf.String())
	}

	return runtime.Command{
		Name: h.desc.Generator.Command,
		Args: args,
		Dir:  filepath.Dir(h.opts.ProjectPath),
	}, nil
}

// Handle runs the generator and waits for it to finish.
func (h *GeneratorHandler) Handle(ctx context.Context) error {
	if h.opts.Runner == nil {
		return fmt.Errorf("framework %s needs a process runner", h.desc.Name)
	}
	cmd, err := h.Command()
	if err != nil {
		return err
	}
	if _, err := h.opts.Runner.LookPath(cmd.Name); err != nil {
		return fmt.Errorf("%s generator requires %s on PATH: %w", h.desc.DisplayName, cmd.Name, err)
	}
	if err := h.opts.Runner.Run(ctx, cmd); err != nil {
		return fmt.Errorf("running %s generator: %w", h.desc.DisplayName, err)
	}
	return nil
}
