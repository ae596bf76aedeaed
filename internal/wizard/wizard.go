package wizard

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/initwiz/initwiz/internal/branding"
	"github.com/initwiz/initwiz/internal/framework"
	"github.com/initwiz/initwiz/internal/gitsetup"
	"github.com/initwiz/initwiz/internal/pkgmanager"
	"github.com/initwiz/initwiz/internal/probe"
	"github.com/initwiz/initwiz/internal/prompt"
	"github.com/initwiz/initwiz/internal/runtime"
	"github.com/initwiz/initwiz/internal/ui"
)

// Prompter asks the wizard's questions.
// Cancelling ctx abandons the pending question.
type Prompter interface {
	AskProjectName(ctx context.Context) (string, error)
	AskFramework(ctx context.Context, choices []prompt.Choice) (string, error)
	AskPackageManager(ctx context.Context, detected string, supported []string) (string, error)
}

// Session is the configuration collected from the user for one run.
type Session struct {
	ProjectName    string
	ProjectPath    string
	Framework      string
	PackageManager string
}

// Options configures a Wizard.
type Options struct {
	Prompter Prompter
	Registry *framework.Registry
	Probe    *probe.Probe
	// Runner executes git, the install command and generator CLIs.
	Runner  runtime.Runner
	Console *ui.Console
	// Cwd is the directory the project is created in.
	Cwd string
	// FallbackPackageManager is offered when nothing is detected in Cwd.
	FallbackPackageManager string
	// CommitMessage overrides the default initial commit message.
	CommitMessage string
}

// Wizard runs the initialization steps in order.
type Wizard struct {
	opts Options
}

// New returns a Wizard. Probe defaults to one backed by opts.Runner.
func New(opts Options) *Wizard {
	if opts.Probe == nil {
		opts.Probe = probe.New(opts.Runner)
	}
	return &Wizard{opts: opts}
}

// Run performs one initialization. The returned error is nil on success
// and an *Error otherwise; its message has already been printed.
func (w *Wizard) Run(ctx context.Context) error {
	con := w.opts.Console
	con.Title("Welcome to %s!", branding.DisplayName())

	projectName, err := w.opts.Prompter.AskProjectName(ctx)
	if err := w.answered(ctx, err); err != nil {
		return err
	}
	projectPath := filepath.Join(w.opts.Cwd, projectName)

	if probe.IsDirectoryNotEmpty(projectPath) {
		return w.fail(KindInput, "Error: The project folder is not empty. Please choose a different name or use an empty folder.", nil)
	}

	name, err := w.opts.Prompter.AskFramework(ctx, w.opts.Registry.Choices())
	if err := w.answered(ctx, err); err != nil {
		return err
	}
	factory, desc, err := w.opts.Registry.Resolve(name)
	if err != nil {
		return w.fail(KindResolution, fmt.Sprintf("Error: %s is not a valid platform.", name), err)
	}

	supported := factory(framework.Options{ProjectName: projectName, ProjectPath: projectPath}).SupportedPackageManagers()
	detected := w.detectPackageManager()
	if detected != "" && !pkgmanager.Contains(supported, detected) {
		con.Muted("%s was detected but %s supports %s", detected, desc.DisplayName, strings.Join(supported, ", "))
	}
	pm, err := w.opts.Prompter.AskPackageManager(ctx, detected, supported)
	if err := w.answered(ctx, err); err != nil {
		return err
	}

	sess := Session{
		ProjectName:    projectName,
		ProjectPath:    projectPath,
		Framework:      desc.DisplayName,
		PackageManager: pm,
	}

	handler := factory(framework.Options{
		ProjectName:    sess.ProjectName,
		ProjectPath:    sess.ProjectPath,
		PackageManager: sess.PackageManager,
		Runner:         w.opts.Runner,
		Out:            con.Writer(),
	})

	if ctx.Err() != nil {
		return w.interrupted(ctx)
	}
	ok, err := w.opts.Probe.IsNodeVersionCompatible(ctx, handler.Node())
	if ctx.Err() != nil {
		return w.interrupted(ctx)
	}
	if !ok {
		return w.fail(KindCompatibility,
			fmt.Sprintf("Couldn't Scaffold the project. Minimum required NodeJs version is %s", handler.Node()), err)
	}

	if err := handler.Handle(ctx); err != nil {
		if ctx.Err() != nil {
			return w.interrupted(ctx)
		}
		return w.fail(KindExecution, "Couldn't Scaffold the project. Please try again.", err)
	}

	git := &gitsetup.Setup{
		ProjectName:   sess.ProjectName,
		ProjectPath:   sess.ProjectPath,
		Framework:     sess.Framework,
		Runner:        w.opts.Runner,
		CommitMessage: w.opts.CommitMessage,
	}
	if err := git.Run(ctx); err != nil {
		if ctx.Err() != nil {
			return w.interrupted(ctx)
		}
		return w.fail(KindExecution, "Couldn't initialize GIT. Please run git init", err)
	}

	if err := w.install(ctx, sess); err != nil {
		return err
	}

	w.summary(sess, desc)
	return nil
}

// detectPackageManager returns the manager used in Cwd, falling back to
// the configured one.
func (w *Wizard) detectPackageManager() string {
	if m, ok := probe.GetPackageManager(w.opts.Cwd); ok {
		return m.String()
	}
	if m, ok := pkgmanager.Parse(w.opts.FallbackPackageManager); ok {
		return m.String()
	}
	return ""
}

func (w *Wizard) install(ctx context.Context, sess Session) error {
	line := pkgmanager.InstallCommand(sess.PackageManager)
	if line == "" {
		w.opts.Console.Notice("Unable to identify the package manager, Using NPM")
		line = pkgmanager.DefaultInstallCommand
	}

	cmd, err := runtime.ParseCommandLine(line, sess.ProjectPath)
	if err != nil {
		return w.fail(KindExecution, "Unable to run the command. Please try again.", err)
	}
	if err := w.opts.Runner.Run(ctx, cmd); err != nil {
		if ctx.Err() != nil {
			return w.interrupted(ctx)
		}
		return w.fail(KindExecution, "Unable to run the command. Please try again.", err)
	}
	return nil
}

func (w *Wizard) summary(sess Session, desc *framework.Descriptor) {
	con := w.opts.Console
	con.Success("%s project %s is ready!", sess.Framework, sess.ProjectName)
	con.Plain("\nNext steps:")
	con.Muted("cd %s", sess.ProjectName)
	if desc.DevScript != "" {
		con.Muted("%s", pkgmanager.RunScript(sess.PackageManager, desc.DevScript))
	}
}

// answered maps the result of a prompt to the wizard's error, if any.
func (w *Wizard) answered(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return w.interrupted(ctx)
	}
	if err == nil {
		return nil
	}
	if errors.Is(err, prompt.ErrAborted) {
		return w.fail(KindAborted, "Aborted.", err)
	}
	return w.fail(KindInput, fmt.Sprintf("Error: %v", err), err)
}

func (w *Wizard) interrupted(ctx context.Context) error {
	return w.fail(KindAborted, "Aborted.", ctx.Err())
}

func (w *Wizard) fail(kind Kind, msg string, err error) error {
	w.opts.Console.Error("%s", msg)
	return &Error{Kind: kind, Msg: msg, Err: err}
}
