package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/currentcolor/currentcolor/internal/config"
	"github.com/currentcolor/currentcolor/internal/source"
	"github.com/currentcolor/currentcolor/internal/utilities"
	"github.com/currentcolor/currentcolor/internal/utils"
)

type generateRequest struct {
	Input    string
	Format   string
	Output   string
	Contrast string
}

var generateCmd = &cobra.Command{
	Use:   "generate [palette]",
	Short: "Generate the .text-<color> utilities for a palette",
	Long: `Generate reads a palette (JSON or YAML, "-" or no argument for stdin) and
writes one .text-<color> rule per hex color along with .text-current.

The palette is either a bare color mapping or a resolved config whose
theme.colors (merged with theme.extend.colors) holds the colors.`,
	Aliases: []string{"gen"},
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		contrast, _ := cmd.Flags().GetString("contrast")

		return runGenerate(generateRequest{
			Input:    inputArg(args),
			Format:   format,
			Output:   output,
			Contrast: contrast,
		}, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func runGenerate(req generateRequest, stdin io.Reader, stdout io.Writer) error {
	settings := loadSettings()

	format := req.Format
	if format == "" {
		format = settings.Output.Format
	}
	output := req.Output
	if output == "" {
		output = settings.Output.Path
	}

	var render func(io.Writer, utilities.Stylesheet) error
	switch format {
	case config.FormatCSS:
		render = utilities.WriteCSS
	case config.FormatJSON:
		render = func(w io.Writer, s utilities.Stylesheet) error {
			return utilities.EncodeJSON(w, s)
		}
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, config.FormatCSS, config.FormatJSON)
	}

	opts, err := resolveOptions(settings, req.Contrast)
	if err != nil {
		return err
	}

	cfg, err := source.Open(req.Input, stdin)
	if err != nil {
		return err
	}

	sheet, err := utilities.Utilities(cfg, opts)
	if err != nil {
		return err
	}

	utils.Debug("Writing %d rules as %s to %q", len(sheet), format, output)
	return writeOutput(output, stdout, func(w io.Writer) error {
		return render(w, sheet)
	})
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("format", "f", "", "Output format: css or json (default from settings, css)")
	generateCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	generateCmd.Flags().StringP("contrast", "c", "", `Contrast colors "low,high", e.g. "#000,#fff"`)
}
