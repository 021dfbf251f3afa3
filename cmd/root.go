package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/currentcolor/currentcolor/internal/config"
	"github.com/currentcolor/currentcolor/internal/utils"
)

// Version information - set via ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "currentcolor",
	Short: "Current-color utilities for theme palettes",
	Long: `currentcolor reads a theme color palette and generates .text-<color> utilities
that expose each color, its inverse and a readable contrast color as CSS
custom properties, plus the matching theme extension.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		initializeGlobalState(verbose)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		utils.CloseDebug()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug messages to stderr")
	rootCmd.SetVersionTemplate("currentcolor version {{.Version}}\n")
}

// initializeGlobalState sets up the state directories and logging
func initializeGlobalState(verbose bool) {
	if err := config.EnsureDirs(); err != nil {
		// Logging is best effort, the generator itself needs no state
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	utils.ConfigureDebug(config.GetLogsDir())
	if verbose {
		utils.SetVerbose(os.Stderr)
	}

	settings := loadSettings()
	utils.CleanupLogs(settings.General.LogRetentionCount)
	utils.Debug("currentcolor %s (built %s)", Version, BuildTime)
}
