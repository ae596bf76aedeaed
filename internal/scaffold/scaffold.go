package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
	"time"

	"github.com/initwiz/initwiz/internal/platform"
)

const tmplExt = ".tmpl"

var invalidPackageChars = regexp.MustCompile(`[^a-z0-9._~-]+`)

// Data holds all template variables available to scaffold templates.
type Data struct {
	ProjectName    string // e.g., "My App"
	PackageName    string // Derived: npm-safe name, e.g., "my-app"
	Framework      string // Display name, e.g., "React"
	PackageManager string // "npm", "yarn", "pnpm" or "bun"
	InstallCommand string // e.g., "pnpm install"
	DevCommand     string // e.g., "pnpm dev"
	Year           int    // Current year
}

// Options tweak how a tree is written.
type Options struct {
	// Executable lists template-relative output paths (slash separated)
	// that receive mode 0755.
	Executable []string
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
}

// NewData creates a Data with derived fields populated.
func NewData(projectName, framework, packageManager, installCommand, devCommand string) *Data {
	return &Data{
		ProjectName:    projectName,
		PackageName:    PackageName(projectName),
		Framework:      framework,
		PackageManager: packageManager,
		InstallCommand: installCommand,
		DevCommand:     devCommand,
		Year:           time.Now().Year(),
	}
}

// PackageName lower-cases name and replaces characters npm rejects with "-".
func PackageName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = invalidPackageChars.ReplaceAllString(n, "-")
	n = strings.Trim(n, "-.")
	if n == "" {
		return "app"
	}
	return n
}

// OutputName maps a template file name to the name written to disk.
func OutputName(name string) string {
	name = strings.TrimSuffix(name, tmplExt)
	if strings.HasPrefix(name, "_") {
		name = "." + strings.TrimPrefix(name, "_")
	}
	return name
}

// Generate writes the template tree rooted at root in fsys to outputDir.
// outputDir is created if needed and must be empty.
func Generate(fsys fs.FS, root string, data *Data, outputDir string, opts Options) (*Result, error) {
	if _, err := fs.Stat(fsys, root); err != nil {
		return nil, fmt.Errorf("template set %q not found: %w", root, err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// Check for existing files to prevent accidental overwrites.
	existingEntries, err := os.ReadDir(outputDir)
	if err == nil && len(existingEntries) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	executable := make(map[string]bool, len(opts.Executable))
	for _, p := range opts.Executable {
		executable[p] = true
	}

	result := &Result{OutputDir: outputDir}

	err = fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if p == root {
			return nil
		}

		rel := strings.TrimPrefix(p, root+"/")
		outRel := outputPath(rel)
		outPath := filepath.Join(outputDir, filepath.FromSlash(outRel))

		if d.IsDir() {
			if err := os.MkdirAll(outPath, 0755); err != nil {
				return fmt.Errorf("creating %s: %w", outPath, err)
			}
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", p, err)
		}

		if strings.HasSuffix(d.Name(), tmplExt) {
			content, err = render(rel, content, data)
			if err != nil {
				return err
			}
		}

		if err := os.WriteFile(outPath, content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		if executable[outRel] {
			if err := platform.Chmod(outPath, 0755); err != nil {
				return fmt.Errorf("marking %s executable: %w", outPath, err)
			}
		}

		result.Files = append(result.Files, outRel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// outputPath applies OutputName to every segment of a slash-separated path.
func outputPath(rel string) string {
	parts := strings.Split(rel, "/")
	for i, part := range parts {
		parts[i] = OutputName(part)
	}
	return path.Join(parts...)
}

func render(name string, content []byte, data *Data) ([]byte, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
