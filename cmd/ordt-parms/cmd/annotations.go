package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/ordt/internal/report"
)

func newAnnotationsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "annotations [files...]",
		Short: "List captured annotation commands in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			if err := s.load(args); err != nil {
				return err
			}
			if err := report.Annotations(cmd.OutOrStdout(), s.parms.Annotations()); err != nil {
				return err
			}
			return s.verdict()
		},
	}
}
