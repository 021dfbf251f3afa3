package cmd

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/currentcolor/currentcolor/internal/source"
	"github.com/currentcolor/currentcolor/internal/tui"
	"github.com/currentcolor/currentcolor/internal/utilities"
)

type previewRequest struct {
	Input    string
	Contrast string
	Static   bool
	Dark     bool
	NoColor  bool
}

var previewCmd = &cobra.Command{
	Use:   "preview [palette]",
	Short: "Preview the derived colors in the terminal",
	Long: `Preview shows every color of the palette next to its inverse, each with its
contrast color as text. Press d to switch the backdrop to dark and c to copy
the selected rule.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contrast, _ := cmd.Flags().GetString("contrast")
		static, _ := cmd.Flags().GetBool("static")
		dark, _ := cmd.Flags().GetBool("dark")
		noColor, _ := cmd.Flags().GetBool("no-color")

		return runPreview(previewRequest{
			Input:    inputArg(args),
			Contrast: contrast,
			Static:   static,
			Dark:     dark,
			NoColor:  noColor,
		}, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func runPreview(req previewRequest, stdin io.Reader, stdout io.Writer) error {
	opts, err := resolveOptions(loadSettings(), req.Contrast)
	if err != nil {
		return err
	}

	cfg, err := source.Open(req.Input, stdin)
	if err != nil {
		return err
	}

	colors, err := utilities.Colors(cfg, opts)
	if err != nil {
		return err
	}

	if req.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// The TUI needs the terminal on stdin, which a piped palette already took
	if req.Static || req.Input == source.Stdin {
		_, err := fmt.Fprintln(stdout, tui.RenderSwatches(colors, opts.Contrast, req.Dark))
		return err
	}

	p := tea.NewProgram(tui.NewModel(colors, opts, req.Dark), tea.WithAltScreen(), tea.WithOutput(stdout))
	_, err = p.Run()
	return err
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringP("contrast", "c", "", `Contrast colors "low,high", e.g. "#000,#fff"`)
	previewCmd.Flags().Bool("static", false, "Print the swatches once instead of starting the interactive view")
	previewCmd.Flags().Bool("dark", false, "Start with the dark backdrop")
	previewCmd.Flags().Bool("no-color", false, "Disable colors in the output")
}
