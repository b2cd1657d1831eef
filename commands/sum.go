package commands

import (
	"github.com/penwyp/go-marks/internal/core/timeline"
	"github.com/penwyp/go-marks/internal/presentation/formatter"
	"github.com/spf13/cobra"
)

func newSumCmd(a *app) *cobra.Command {
	var crit criteriaFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sum",
		Short: "Total the time spent on selected tasks",
		Long: `Total the time spent on selected tasks, broken down by summary and tag.

Takes the same criteria as list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, tl, err := a.load()
			if err != nil {
				return err
			}
			c, err := crit.criteria(a)
			if err != nil {
				return err
			}

			now := a.now()
			indices, err := a.selector().Select(tl, c, now)
			if err != nil {
				return err
			}
			report := formatter.NewSummaryReport(tl.Name, timeline.ComputeIntervals(tl, indices, now))

			if asJSON {
				return formatter.NewJSONFormatter().FormatSummary(cmd.OutOrStdout(), report)
			}
			return formatter.NewSummaryFormatter(a.sizer).Format(cmd.OutOrStdout(), report)
		},
	}
	crit.register(cmd.Flags())
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return cmd
}
