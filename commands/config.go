package commands

import (
	"fmt"

	"github.com/penwyp/go-marks/internal/config"
	"github.com/spf13/cobra"
)

const skipConfigFile = "skip-config-file"

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		// The file is about to be created, so setup must not require it.
		Annotations: map[string]string{skipConfigFile: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultConfigPath()
			if a.configFile != "" {
				path = expandPath(a.configFile)
			}
			if err := config.Write(config.DefaultConfig(), path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Render(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
