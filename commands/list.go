package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/penwyp/go-marks/internal/data/watch"
	"github.com/penwyp/go-marks/internal/presentation/display"
	"github.com/penwyp/go-marks/internal/presentation/formatter"
	"github.com/penwyp/go-marks/internal/presentation/interaction"
	"github.com/penwyp/go-marks/internal/util"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var opts listOptions
	var output string
	var watchStore bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks with their durations",
		Long: `List selected tasks with their durations.

Without criteria every task is listed. Criteria combine with AND unless
--any is given.

Examples:
  marks list --today
  marks list --this-week --tag client --output csv
  marks list --from 3f2a --to 9c1b
  marks list --grep 'review|meeting' --any --yesterday`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !watchStore {
				return a.renderList(out, &opts)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.watchList(ctx, out, &opts)
		},
	}
	opts.criteria.register(cmd.Flags())
	cmd.Flags().StringVar(&opts.sort, "sort", "time", "Sort by time, duration or summary")
	cmd.Flags().BoolVarP(&opts.reverse, "reverse", "r", false, "Reverse the sort order")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json, csv)")
	cmd.Flags().BoolVarP(&watchStore, "watch", "w", false, "Re-render whenever the timeline document changes")
	return cmd
}

type listOptions struct {
	criteria criteriaFlags
	sort     string
	reverse  bool
}

func (o *listOptions) sorter() (*interaction.RowSorter, error) {
	s := interaction.NewRowSorter()
	if o.sort != "" {
		field, err := interaction.ParseSortField(o.sort)
		if err != nil {
			return nil, err
		}
		s.SetField(field)
	}
	if o.reverse {
		s.SetOrder(interaction.SortDescending)
	}
	return s, nil
}

// renderList selects marks and prints them in the configured format.
func (a *app) renderList(out io.Writer, opts *listOptions) error {
	sorter, err := opts.sorter()
	if err != nil {
		return err
	}
	_, tl, err := a.load()
	if err != nil {
		return err
	}
	c, err := opts.criteria.criteria(a)
	if err != nil {
		return err
	}

	now := a.now()
	indices, err := a.selector().Select(tl, c, now)
	if err != nil {
		return err
	}

	f, err := formatter.NewFormatter(a.cfg.Output, a.sizer)
	if err != nil {
		return err
	}
	rows := formatter.BuildRows(tl, indices, now)
	sorter.Sort(rows)
	return f.Format(out, rows)
}

func (a *app) watchList(ctx context.Context, out io.Writer, opts *listOptions) error {
	fw, err := watch.NewFileWatcher(a.cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", a.cfg.Store, err)
	}
	defer fw.Close()

	td := display.NewTerminalDisplay(out, a.cfg.Store, util.ColorEnabled())
	td.EnterAlternateScreen()
	defer td.ExitAlternateScreen()

	redraw := func() {
		td.Render(a.now(), func(w io.Writer) error {
			return a.renderList(w, opts)
		})
	}
	redraw()

	return fw.Run(ctx, func(ev watch.Event) error {
		util.LogDebug("store changed", util.F("path", ev.Path), util.F("op", ev.Operation))
		redraw()
		return nil
	})
}
