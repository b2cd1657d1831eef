package commands

import (
	"strings"

	"github.com/penwyp/go-marks/internal/core/model"
	"github.com/penwyp/go-marks/internal/core/timeline"
	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	var at, notes string
	var tags []string

	cmd := &cobra.Command{
		Use:     "add SUMMARY...",
		Aliases: []string{"start"},
		Short:   "Start a new task",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now()
			when, err := parseAt(at, now)
			if err != nil {
				return err
			}
			_, err = a.mutate(cmd.OutOrStdout(), timeline.Command{
				Kind: timeline.CommandAdd,
				Params: timeline.AddParams{
					At:      when,
					Summary: strings.Join(args, " "),
					Notes:   notes,
					Tags:    tags,
				},
			})
			return err
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "Start time (HH:MM, -15m, 2006-01-02T15:04:05)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Notes for the task")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Tag the task (repeatable)")
	return cmd
}

func newStopCmd(a *app) *cobra.Command {
	var at, notes string
	var tags []string

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the active task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := parseAt(at, a.now())
			if err != nil {
				return err
			}
			_, err = a.mutate(cmd.OutOrStdout(), timeline.Command{
				Kind:   timeline.CommandStop,
				Params: timeline.StopParams{At: when, Notes: notes, Tags: tags},
			})
			return err
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "Stop time (HH:MM, -15m, 2006-01-02T15:04:05)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Notes for the stop")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Tag the stop (repeatable)")
	return cmd
}

func newContinueCmd(a *app) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "continue",
		Short: "Restart the task that was stopped last",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := parseAt(at, a.now())
			if err != nil {
				return err
			}
			_, err = a.mutate(cmd.OutOrStdout(), timeline.Command{
				Kind:   timeline.CommandContinue,
				Params: timeline.ContinueParams{At: when},
			})
			return err
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "Start time (HH:MM, -15m, 2006-01-02T15:04:05)")
	return cmd
}

func newResumeCmd(a *app) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "resume [ID]",
		Short: "Start a copy of an earlier task, the latest one by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := parseAt(at, a.now())
			if err != nil {
				return err
			}
			p := timeline.ResumeParams{At: when}
			if len(args) == 1 {
				p.ID = args[0]
			}
			_, err = a.mutate(cmd.OutOrStdout(), timeline.Command{Kind: timeline.CommandResume, Params: p})
			return err
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "Start time (HH:MM, -15m, 2006-01-02T15:04:05)")
	return cmd
}

func newAmendCmd(a *app) *cobra.Command {
	var summary, at, notes string
	var tags, untags []string

	cmd := &cobra.Command{
		Use:   "amend [ID]",
		Short: "Edit a mark, the latest task by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := timeline.AmendParams{AddTags: tags, RemoveTags: untags}
			if len(args) == 1 {
				p.ID = args[0]
			}
			if cmd.Flags().Changed("summary") {
				p.Summary = &summary
			}
			if cmd.Flags().Changed("notes") {
				p.Notes = &notes
			}
			if cmd.Flags().Changed("at") {
				when, err := parseAt(at, a.now())
				if err != nil {
					return err
				}
				if when == nil {
					return &model.ValidationError{Field: "time", Reason: "--at must not be empty"}
				}
				p.At = when
			}
			_, err := a.mutate(cmd.OutOrStdout(), timeline.Command{Kind: timeline.CommandAmend, Params: p})
			return err
		},
	}
	cmd.Flags().StringVar(&summary, "summary", "", "New summary")
	cmd.Flags().StringVar(&at, "at", "", "New time (HH:MM, -15m, 2006-01-02T15:04:05)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "New notes (empty clears them)")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Add a tag (repeatable)")
	cmd.Flags().StringSliceVar(&untags, "untag", nil, "Remove a tag (repeatable)")
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a mark",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.mutate(cmd.OutOrStdout(), timeline.Command{
				Kind:   timeline.CommandDelete,
				Params: timeline.DeleteParams{ID: args[0]},
			})
			return err
		},
	}
}
