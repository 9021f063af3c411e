package main

import (
	"fmt"
	"io"

	"binviz/internal/config"
	serr "binviz/internal/errors"
	"binviz/internal/log"
	"binviz/internal/render"
	"binviz/internal/session"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats for the conversion commands.
const (
	outputText = "text"
	outputYAML = "yaml"
)

// rootOptions holds the persistent flags and the configuration loaded from
// them. Subcommands read it after PersistentPreRunE has run.
type rootOptions struct {
	cfgFile string
	debug   bool
	logJSON bool
	logFile string
	output  string

	cfg *config.Config
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "binviz",
		Short: "Show how numbers, text and files look in binary",
		Long: `binviz converts a decimal number (0-255) to an 8-bit pattern, text to
one binary code per character, and the first bytes of a file to a binary
dump. Run it without a subcommand, or with "tui", for the interactive view.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = log.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/binviz/config.yaml)")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.logJSON, "log-json", false, "write logs as JSON")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")
	flags.StringVarP(&opts.output, "output", "o", outputText, "output format for conversions (text|yaml)")

	rootCmd.AddCommand(
		newDecimalCmd(opts),
		newTextCmd(opts),
		newImageCmd(opts),
		newTUICmd(opts),
		newGUICmd(opts),
		newWatchCmd(opts),
		newConfigCmd(opts),
		newThemesCmd(opts),
	)
	return rootCmd
}

func (o *rootOptions) load() error {
	var err error
	if o.cfgFile != "" {
		o.cfg, err = config.LoadConfigFile(o.cfgFile)
	} else {
		o.cfg, err = config.LoadConfig()
	}
	if err != nil {
		if serr.IsInvalidConfig(err) {
			return err
		}
		log.LogWithFields(log.F("error", err)).Warn("using default settings")
		o.cfg = config.New()
	}

	var logOpts []log.Option
	if o.logJSON || o.cfg.Logging.JSON {
		logOpts = append(logOpts, log.WithJSON())
	}
	logFile := o.logFile
	if logFile == "" {
		logFile = o.cfg.Logging.File
	}
	if logFile != "" {
		logOpts = append(logOpts, log.WithFile(logFile))
	}
	if len(logOpts) > 0 {
		log.Configure(logOpts...)
	}
	log.SetDebug(o.debug || o.cfg.Logging.Debug)

	if o.output != outputText && o.output != outputYAML {
		return fmt.Errorf("unknown output format %q (want text or yaml)", o.output)
	}
	return nil
}

func (o *rootOptions) newShell() *session.Shell {
	return session.New(session.OptionsFromConfig(o.cfg))
}

func (o *rootOptions) styles() render.Styles {
	return render.NewStyles(o.cfg.Display)
}

// emit writes v as YAML when -o yaml is set, else the rendered text.
func (o *rootOptions) emit(w io.Writer, text string, v interface{}) error {
	if o.output == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		return enc.Close()
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
