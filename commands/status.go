package commands

import (
	"fmt"

	"github.com/penwyp/go-marks/internal/util"
	"github.com/spf13/cobra"
)

const statusTimeLayout = "2006-01-02 15:04"

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, tl, err := a.load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			last, ok := tl.Last()
			switch {
			case !ok:
				fmt.Fprintf(out, "%s: no marks yet\n", tl.Name)
			case last.IsBoundary():
				fmt.Fprintf(out, "%s: no active task (stopped %s ago)\n",
					tl.Name, util.FormatDuration(a.now().Sub(last.Time)))
			default:
				fmt.Fprintf(out, "%s: %s %s for %s [%s]\n",
					tl.Name,
					util.Colorize("●", util.ColorGreen),
					last.Summary,
					util.Colorize(util.FormatDuration(a.now().Sub(last.Time)), util.ColorBold),
					last.ShortID())
				if len(last.Tags) > 0 {
					fmt.Fprintf(out, "  %s\n", util.FormatTags(last.Tags))
				}
			}

			if first, latest, ok := tl.Span(); ok {
				fmt.Fprintf(out, "  %d marks from %s to %s\n",
					tl.Len(), first.Format(statusTimeLayout), latest.Format(statusTimeLayout))
			}
			return nil
		},
	}
}
