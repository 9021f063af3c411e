package main

import (
	"context"
	"os"
	"strconv"
	"strings"

	"binviz/internal/config"
	"binviz/internal/convert"

	"github.com/spf13/cobra"
)

type decimalResult struct {
	Input  string `yaml:"input"`
	Binary string `yaml:"binary"`
}

type textResult struct {
	Input   string              `yaml:"input"`
	Entries []convert.TextEntry `yaml:"entries"`
	Binary  string              `yaml:"binary"`
}

func newDecimalCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decimal <number>",
		Short: "Convert a decimal number (0-255) to 8-bit binary",
		Long: `Convert a decimal number to its 8-bit binary form and draw the bit grid.
Like a browser number field, leading digits are used and anything after
them is ignored, so "3.9" converts as 3. Put -- before negative input.`,
		Example: "  binviz decimal 5\n  binviz decimal -o yaml 200",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := opts.newShell()
			shell.EditDecimal(args[0])
			if err := shell.ConvertDecimal(); err != nil {
				return err
			}

			st := shell.State()
			return opts.emit(cmd.OutOrStdout(),
				opts.styles().Decimal(st.Binary),
				decimalResult{Input: st.DecimalInput, Binary: st.Binary})
		},
	}
}

func newTextCmd(opts *rootOptions) *cobra.Command {
	var latin1 bool

	cmd := &cobra.Command{
		Use:   "text <text...>",
		Short: "Convert text to binary, one code per character",
		Long: `Convert text to binary. Each UTF-16 code unit becomes one binary code;
units above 255 keep their full width unless --latin1 is set, in which case
they are rejected. Arguments are joined with single spaces.`,
		Example: `  binviz text Hi
  binviz text --latin1 "café"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if latin1 {
				opts.cfg.Text.CodeUnits = config.CodeUnitsLatin1
			}
			shell := opts.newShell()
			shell.EditText(strings.Join(args, " "))
			if err := shell.ConvertText(); err != nil {
				return err
			}

			st := shell.State()
			return opts.emit(cmd.OutOrStdout(),
				opts.styles().Text(st.TextEntries),
				textResult{Input: st.TextInput, Entries: st.TextEntries, Binary: st.TextBinary})
		},
	}

	cmd.Flags().BoolVar(&latin1, "latin1", false, "reject characters outside 0-255")
	return cmd
}

func newImageCmd(opts *rootOptions) *cobra.Command {
	var (
		limit          int
		alwaysEllipsis bool
		width          int
		withEXIF       bool
	)

	cmd := &cobra.Command{
		Use:   "image <file>",
		Short: "Dump the first bytes of a file in binary",
		Long: `Read a file and print its bytes as space-separated 8-bit codes, cut to
the preview limit. Use "-" to read standard input. Any file is accepted;
non-image content is only noted in the log.`,
		Example: "  binviz image photo.png\n  binviz image --limit 80 - < photo.png",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("limit") {
				opts.cfg.Image.PreviewLimit = limit
			}
			if cmd.Flags().Changed("always-ellipsis") {
				opts.cfg.Image.AlwaysEllipsis = alwaysEllipsis
			}
			if err := opts.cfg.Validate(); err != nil {
				return err
			}

			var path string
			if len(args) > 0 {
				path = args[0]
			}
			shell := opts.newShell()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			var (
				preview *convert.Preview
				err     error
			)
			if path == "-" {
				id, loadCtx := shell.BeginImageLoad(ctx)
				preview, err = convert.LoadReader(loadCtx, cmd.InOrStdin(), shell.Options().Preview)
				shell.CompleteImageLoad(id, preview, err)
			} else {
				preview, err = shell.LoadImage(ctx, path)
			}
			if err != nil {
				return err
			}
			if withEXIF && path != "-" {
				if preview.Metadata, err = convert.ReadEXIF(path); err != nil {
					return err
				}
			}

			return opts.emit(cmd.OutOrStdout(), opts.styles().Image(preview, width), preview)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", convert.DefaultPreviewLimit, "number of dump characters to show")
	cmd.Flags().BoolVar(&alwaysEllipsis, "always-ellipsis", false, "append ... even when nothing was cut")
	cmd.Flags().BoolVar(&withEXIF, "exif", false, "also print camera EXIF fields")
	cmd.Flags().IntVar(&width, "width", terminalWidth(), "wrap the dump at this width (0 disables wrapping)")
	return cmd
}

// terminalWidth reads COLUMNS, falling back to 80.
func terminalWidth() int {
	if n, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && n >= 0 {
		return n
	}
	return 80
}
