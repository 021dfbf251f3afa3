package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/currentcolor/currentcolor/internal/utilities"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Print the theme extension defining the current* colors",
	Long: `Theme prints the theme extension that declares current, current-contrast,
current-inverted and current-contrast-inverted. Each reads its custom
property with a fallback from the contrast colors and keeps the
<alpha-value> placeholder for opacity modifiers.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		contrast, _ := cmd.Flags().GetString("contrast")
		flat, _ := cmd.Flags().GetBool("flat")
		return runTheme(contrast, flat, cmd.OutOrStdout())
	},
}

func runTheme(contrast string, flat bool, stdout io.Writer) error {
	opts, err := resolveOptions(loadSettings(), contrast)
	if err != nil {
		return err
	}

	ext := utilities.Theme(opts)
	if flat {
		return utilities.EncodeJSON(stdout, ext.Colors())
	}
	return utilities.EncodeJSON(stdout, ext)
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.Flags().StringP("contrast", "c", "", `Contrast colors "low,high", e.g. "#000,#fff"`)
	themeCmd.Flags().Bool("flat", false, "Print only the colors mapping")
}
