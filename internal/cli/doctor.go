package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/initwiz/initwiz/internal/gitsetup"
	"github.com/initwiz/initwiz/internal/manifest"
	"github.com/initwiz/initwiz/internal/pkgmanager"
	"github.com/initwiz/initwiz/internal/probe"
	"github.com/initwiz/initwiz/internal/runtime"
	"github.com/spf13/cobra"
)

var checkDescriptor string

func init() {
	doctorCmd.Flags().StringVar(&checkDescriptor, "check-descriptor", "", "Validate a framework descriptor file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the tools the wizard depends on",
	Long: `Report whether node, git and each supported package manager are available on PATH.

With --check-descriptor, validate a framework descriptor file instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkDescriptor != "" {
			return runDescriptorCheck(cmd.OutOrStdout(), checkDescriptor)
		}
		runDoctor(cmd.Context(), cmd.OutOrStdout(), runtime.NewExecRunner())
		return nil
	},
}

func runDoctor(ctx context.Context, w io.Writer, r runtime.Runner) {
	fmt.Fprintln(w, "Runtime check:")
	if version, err := probe.New(r).NodeVersion(ctx); err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found\n", runtime.NodeBinary)
	} else {
		fmt.Fprintf(w, "  [ OK ] %s %s\n", runtime.NodeBinary, version)
	}
	checkBinary(w, r, gitsetup.GitBinary)

	fmt.Fprintln(w, "Package managers:")
	for _, m := range pkgmanager.All {
		checkBinary(w, r, m.String())
	}
}

func checkBinary(w io.Writer, r runtime.Runner, name string) {
	path, err := r.LookPath(name)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found\n", name)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, path)
}

func runDescriptorCheck(w io.Writer, path string) error {
	fmt.Fprintf(w, "Descriptor validation: %s\n", path)

	report, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("descriptor validation failed: %w", err)
	}

	if report.Valid() {
		m, err := manifest.ParseFile(path)
		if err != nil {
			fmt.Fprintf(w, "  [ OK ] Valid descriptor\n")
			return nil
		}
		fmt.Fprintf(w, "  [ OK ] Valid %s framework: %s (node >= %s)\n", m.Kind, m.Name, m.Node)
		return nil
	}

	fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(report.Issues))
	for _, issue := range report.Issues {
		fmt.Fprintf(w, "    - %s\n", issue)
	}
	return fmt.Errorf("descriptor %s has %d validation issue(s)", path, len(report.Issues))
}
