package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/ordt/internal/parameters"
	"github.com/msto63/ordt/internal/report"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	var (
		changedOnly bool
		category    string
	)

	cmd := &cobra.Command{
		Use:   "show [files...]",
		Short: "Show every control parameter after loading the files",
		Long: `Loads the given parameter files and prints every control parameter
with its category and value. Values that differ from the compiled-in
default are marked with '*'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			if err := s.load(args); err != nil {
				return err
			}

			entries := filterEntries(s.parms.Snapshot(), changedOnly, category)
			if err := report.Parameters(cmd.OutOrStdout(), entries); err != nil {
				return err
			}
			return s.verdict()
		},
	}

	cmd.Flags().BoolVar(&changedOnly, "changed", false, "only show parameters that differ from their default")
	cmd.Flags().StringVar(&category, "category", "", "only show one category (e.g. global, systemverilog_out)")
	return cmd
}

func filterEntries(entries []parameters.Entry, changedOnly bool, category string) []parameters.Entry {
	out := entries[:0:0]
	for _, e := range entries {
		if changedOnly && !e.Changed {
			continue
		}
		if category != "" && e.Category.String() != category {
			continue
		}
		out = append(out, e)
	}
	return out
}
