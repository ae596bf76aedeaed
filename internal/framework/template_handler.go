package framework

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/initwiz/initwiz/internal/pkgmanager"
	"github.com/initwiz/initwiz/internal/scaffold"
)

// TemplateHandler renders an embedded template tree into the project path.
type TemplateHandler struct {
	desc      *Descriptor
	templates fs.FS
	opts      Options
}

// TemplateFactory returns a Factory producing TemplateHandlers for desc.
func TemplateFactory(desc *Descriptor, templates fs.FS) Factory {
	return func(opts Options) Handler {
		return &TemplateHandler{desc: desc, templates: templates, opts: opts}
	}
}

// Node returns the descriptor's minimum Node.js version.
func (h *TemplateHandler) Node() string { return h.desc.Node }

// SupportedPackageManagers returns the descriptor's package managers.
func (h *TemplateHandler) SupportedPackageManagers() []string { return h.desc.PackageManagers }

// Handle renders templates/<name> into the project path.
func (h *TemplateHandler) Handle(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	pm := h.opts.PackageManager
	install := pkgmanager.InstallCommand(pm)
	if install == "" {
		install = pkgmanager.DefaultInstallCommand
	}
	data := scaffold.NewData(h.opts.ProjectName, h.desc.DisplayName, pm, install, pkgmanager.RunScript(pm, h.desc.DevScript))

	result, err := scaffold.Generate(h.templates, h.desc.Name, data, h.opts.ProjectPath,
		scaffold.Options{Executable: h.desc.Executable})
	if err != nil {
		return fmt.Errorf("scaffolding %s: %w", h.desc.DisplayName, err)
	}

	if h.opts.Out != nil {
		for _, f := range result.Files {
			fmt.Fprintf(h.opts.Out, "  created %s\n", f)
		}
	}
	return nil
}
