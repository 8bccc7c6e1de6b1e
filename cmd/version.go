package cmd

import (
	"fmt"

	"cinematrix-cli/config"
	"github.com/spf13/cobra"
)

func newVersionCmd(build BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of Cinematrix",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			version := build.Version
			if version == "" {
				version = "dev"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s", config.AppName, version)
			if build.Commit != "none" && build.Commit != "" {
				fmt.Fprintf(out, " (%s)", build.Commit)
			}
			fmt.Fprintln(out)
		},
	}
}
