package commands

import (
	"fmt"
	"strings"

	"github.com/penwyp/go-marks/internal/core/timeline"
	"github.com/penwyp/go-marks/internal/util"
	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init NAME...",
		Short: "Create an empty timeline document",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := a.store()
			if st.Exists() && !force {
				return fmt.Errorf("timeline %s already exists (use --force to replace it)", st.Path)
			}

			tl, err := timeline.Init(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if err := st.Save(tl); err != nil {
				return err
			}

			util.LogInfo("timeline initialized", util.F("path", st.Path), util.F("name", tl.Name))
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized timeline %q at %s\n", tl.Name, st.Path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace an existing document")
	return cmd
}
