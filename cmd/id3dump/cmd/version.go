package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/id3tags"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := id3tags.GetVersionInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "id3dump %s (commit %s, built %s, %s)\n",
				info.Version, info.GitCommit, info.BuildTime, info.GoVersion)
		},
	}
}
