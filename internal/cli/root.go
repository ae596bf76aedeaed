package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/initwiz/initwiz/internal/branding"
	"github.com/initwiz/initwiz/internal/config"
	"github.com/initwiz/initwiz/internal/framework"
	"github.com/initwiz/initwiz/internal/prompt"
	"github.com/initwiz/initwiz/internal/runtime"
	"github.com/initwiz/initwiz/internal/ui"
	"github.com/initwiz/initwiz/internal/wizard"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a new JavaScript project in a subdirectory of the current
directory. It asks for a project name, a framework and a package manager,
scaffolds the starter files, commits them to a new git repository and
installs the dependencies.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	config.Load()

	reg, err := framework.DefaultRegistry()
	if err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	w := wizard.New(wizard.Options{
		Prompter:               prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()),
		Registry:               reg,
		Runner:                 runtime.NewExecRunner(),
		Console:                ui.New(cmd.OutOrStdout()),
		Cwd:                    cwd,
		FallbackPackageManager: config.PackageManager(),
		CommitMessage:          config.CommitMessage(),
	})
	return w.Run(cmd.Context())
}

// Execute runs the root command with build info injected via ldflags and
// returns the process exit code.
func Execute(version, commit, date string) int {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && wizard.KindOf(err) == "" {
		ui.New(rootCmd.ErrOrStderr()).Error("Error: %v", err)
	}
	return wizard.ExitCode(err)
}
