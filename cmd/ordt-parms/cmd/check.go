package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/ordt/internal/parameters"
	"github.com/msto63/ordt/internal/report"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: "Validate parameter files and summarize diagnostics",
		Long: `Loads the given parameter files and prints every diagnostic raised
while applying them. Exits with status 2 when any value is rejected,
whether or not --fail-on-error is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			if err := s.load(args); err != nil {
				return err
			}

			if err := report.Summary(cmd.OutOrStdout(), s.parms.ParameterFiles(), s.recorder.All()); err != nil {
				return err
			}
			if n := s.recorder.Count(parameters.SeverityError); n > 0 {
				return validationFailure(n)
			}
			return nil
		},
	}
}
