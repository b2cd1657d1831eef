package commands

import (
	"fmt"

	"github.com/penwyp/go-marks/internal/core/model"
	"github.com/penwyp/go-marks/internal/core/timeline"
	"github.com/penwyp/go-marks/internal/data/store"
	"github.com/penwyp/go-marks/internal/presentation/formatter"
	"github.com/penwyp/go-marks/internal/util"
	"github.com/spf13/cobra"
)

func newMergeCmd(a *app) *cobra.Command {
	var into, policyName string

	cmd := &cobra.Command{
		Use:   "merge FILE...",
		Short: "Merge timeline documents",
		Long: `Merge timeline documents into one.

Marks sharing an id are reconciled field by field according to --policy:
  concat  join differing summaries and notes (default)
  first   keep the value from the first file
  last    keep the value from the last file
Tags are always combined. Without --into the merged document is printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := timeline.ParsePolicy(policyName)
			if err != nil {
				return err
			}

			loc := a.clock.Location()
			sources := make([]*model.Timeline, 0, len(args))
			for _, path := range args {
				tl, err := store.New(expandPath(path), loc).Load()
				if err != nil {
					return fmt.Errorf("failed to load %s: %w", path, err)
				}
				sources = append(sources, tl)
			}

			merged, conflicts := timeline.Merge(sources, policy)
			util.LogInfo("timelines merged",
				util.F("sources", len(sources)),
				util.F("marks", merged.Len()),
				util.F("conflicts", len(conflicts)))

			if into == "" {
				data, err := store.Encode(merged, model.FormatJSON, loc)
				if err != nil {
					return err
				}
				if _, err := cmd.OutOrStdout().Write(data); err != nil {
					return err
				}
				if len(conflicts) > 0 {
					return formatter.FormatConflicts(cmd.ErrOrStderr(), conflicts, policy)
				}
				return nil
			}

			dest := store.New(expandPath(into), loc)
			if err := dest.Save(merged); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Merged %d timelines (%d marks) into %s\n", len(sources), merged.Len(), dest.Path)
			return formatter.FormatConflicts(out, conflicts, policy)
		},
	}
	cmd.Flags().StringVar(&into, "into", "", "Write the merged timeline to this file")
	cmd.Flags().StringVar(&policyName, "policy", string(timeline.PolicyConcatenate), "Conflict policy (concat, first, last)")
	return cmd
}
