package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/initwiz/initwiz/internal/framework"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(frameworksCmd)
}

var frameworksCmd = &cobra.Command{
	Use:   "frameworks",
	Short: "List the frameworks the wizard can scaffold",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := framework.DefaultRegistry()
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tDISPLAY NAME\tNODE\tPACKAGE MANAGERS")
		for _, d := range reg.Descriptors() {
			fmt.Fprintf(tw, "%s\t%s\t>= %s\t%s\n", d.Name, d.DisplayName, d.Node, strings.Join(d.PackageManagers, ", "))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d frameworks available\n", reg.Len())
		return nil
	},
}
