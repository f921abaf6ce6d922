package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/ordt/pkg/core/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get("ordt-parms")
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ordt-parms v%s\n", info.Version)
			fmt.Fprintf(out, "  ordt:       %s\n", info.Compiler)
			fmt.Fprintf(out, "  Git Commit: %s\n", info.Commit)
			fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate)
			fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(out, "  OS/Arch:    %s\n", info.Platform)
		},
	}
}
