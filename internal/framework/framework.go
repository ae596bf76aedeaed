package framework

import (
	"context"
	"io"

	"github.com/initwiz/initwiz/internal/manifest"
	"github.com/initwiz/initwiz/internal/runtime"
)

// Descriptor is the static metadata of one framework.
type Descriptor = manifest.FrameworkManifest

// Options carries the session values a handler is built from.
type Options struct {
	ProjectName    string
	ProjectPath    string
	PackageManager string
	// Runner executes external processes for generator frameworks.
	Runner runtime.Runner
	// Out receives progress messages. Nil discards them.
	Out io.Writer
}

// Handler materializes one framework's starter project.
type Handler interface {
	// Node returns the minimum compatible Node.js version.
	Node() string
	// SupportedPackageManagers lists the package managers the framework works with.
	SupportedPackageManagers() []string
	// Handle writes the starter project to the project path.
	Handle(ctx context.Context) error
}

// Factory builds a Handler for a session.
type Factory func(opts Options) Handler
