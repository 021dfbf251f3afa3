package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/currentcolor/currentcolor/internal/config"
	"github.com/currentcolor/currentcolor/internal/tui/colors"
	"github.com/currentcolor/currentcolor/internal/utilities"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and initialize the settings file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		return runConfigShow(asJSON, cmd.OutOrStdout())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default settings file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		return runConfigInit(force, cmd.OutOrStdout())
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetSettingsPath())
	},
}

var (
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(colors.Accent)
	labelStyle    = lipgloss.NewStyle().Bold(true)
	describeStyle = lipgloss.NewStyle().Foreground(colors.Muted)
)

func runConfigShow(asJSON bool, stdout io.Writer) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings in %s: %w", config.GetSettingsPath(), err)
	}
	if asJSON {
		return utilities.EncodeJSON(stdout, settings)
	}

	meta := config.GetSettingsMetadata()
	for i, category := range config.CategoryOrder() {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		fmt.Fprintln(stdout, categoryStyle.Render(category))
		for _, m := range meta[category] {
			value, ok := settings.DisplayValue(m.Key)
			if !ok {
				continue
			}
			fmt.Fprintf(stdout, "  %s: %s\n", labelStyle.Render(m.Label), value)
			fmt.Fprintf(stdout, "    %s\n", describeStyle.Render(m.Description))
		}
	}
	return nil
}

func runConfigInit(force bool, stdout io.Writer) error {
	path := config.GetSettingsPath()
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.SaveSettings(config.DefaultSettings()); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	fmt.Fprintf(stdout, "Wrote default settings to %s\n", path)
	return nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configInitCmd, configPathCmd)
	configShowCmd.Flags().Bool("json", false, "Print the settings as JSON")
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing settings file")
}
