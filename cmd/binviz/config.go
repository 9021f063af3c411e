package main

import (
	"fmt"
	"os"

	"binviz/internal/config"
	"binviz/internal/convert"
	"binviz/internal/render"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.cfgFile
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return fmt.Errorf("cannot determine config path: %w", err)
				}
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.SaveConfig(config.New(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(opts.cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}

func newThemesCmd(opts *rootOptions) *cobra.Command {
	var preview bool

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the color themes for the bit grid",
		Long:  `List the color themes. Set one with "display.theme" in the config file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			sample := convert.Bits("10100101")
			for _, name := range config.ListThemes() {
				marker := "  "
				if name == opts.cfg.Display.Theme {
					marker = "* "
				}
				fmt.Fprintln(out, marker+name)
				if preview {
					c := config.New()
					c.ApplyTheme(name)
					fmt.Fprintln(out, render.NewStyles(c.Display).BitGrid(sample))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&preview, "preview", false, "draw a sample bit grid in each theme")
	return cmd
}
