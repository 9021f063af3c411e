package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"binviz/internal/convert"
	serr "binviz/internal/errors"
	"binviz/internal/gui"
	"binviz/internal/tui"
	"binviz/internal/watch"

	"github.com/spf13/cobra"
)

func runTUI(opts *rootOptions) error {
	if err := tui.Run(opts.newShell(), opts.cfg); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the terminal user interface",
		Long:  `Start the interactive terminal view with one tab per conversion mode.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}
}

func newGUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Launch the graphical user interface",
		Long:  `Launch the desktop window. Files can be picked or dropped onto it.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !gui.IsGUIAvailable() {
				return fmt.Errorf("GUI not available in this build; use \"binviz tui\"")
			}
			app, err := gui.NewFactory(opts.cfg, opts.newShell()).Create()
			if err != nil {
				return fmt.Errorf("error launching GUI: %w", err)
			}
			app.Run()
			return nil
		},
	}
}

func newWatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [directory...]",
		Short: "Dump every new image that appears in a directory",
		Long: `Watch directories and print the binary dump of each created or changed
file whose name matches the configured image patterns. Directories given
as arguments replace the configured ones; with none configured the current
directory is watched. Press Ctrl+C to stop.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.cfg.Watch.Directories = args
			}
			if len(opts.cfg.Watch.Directories) == 0 {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("error getting current directory: %w", err)
				}
				opts.cfg.Watch.Directories = []string{wd}
			}

			previewer, err := watch.NewPreviewer(opts.cfg, opts.newShell())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			styles := opts.styles()
			previewer.SetHandler(func(path string, p *convert.Preview, err error) {
				if err != nil {
					fmt.Fprintln(out, styles.Error(serr.UserMessage(err)))
					return
				}
				_ = opts.emit(out, styles.Image(p, terminalWidth()), p)
			})

			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := previewer.Start(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Watching %v. Press Ctrl+C to stop.\n", previewer.Status().WatchDirectories)

			<-ctx.Done()
			previewer.Stop()
			fmt.Fprintf(cmd.ErrOrStderr(), "Previewed %d files.\n", previewer.Status().FilesPreviewed)
			return nil
		},
	}
}
