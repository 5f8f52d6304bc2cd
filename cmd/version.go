package cmd

import (
	"fmt"

	"github.com/philipparndt/gobox/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "gobox %s\n", version.GetFullVersion())
			fmt.Fprintf(out, "  Commit: %s\n", version.GitCommit)
			fmt.Fprintf(out, "  Built:  %s\n", version.BuildDate)
		},
	}
}
