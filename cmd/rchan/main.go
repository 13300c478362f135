package main

import (
	"fmt"
	"os"

	"github.com/rchan/rchan/internal/common/logger"
	"github.com/rchan/rchan/internal/common/output"
	"github.com/rchan/rchan/internal/common/version"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "rchan",
	Short: "PKGBUILD update checker and batch builder",
	Long: `rchan tracks local PKGBUILD directories against their canonical remote
copies and batch-builds them.

Run without arguments to scan the current directory: every immediate
subdirectory containing both an rchan.yaml and a PKGBUILD is checked
against the remote PKGBUILD its declaration points at.`,
	Args:    cobra.NoArgs,
	Version: version.Short(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure logging based on flags
		if verbose {
			logger.SetVerbose(true)
		}
		if quiet {
			logger.SetQuiet(true)
		}
		if noColor {
			output.NoColor()
		}
	},
	Run: runCheck,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.SetVersionTemplate(version.Info() + "\n")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
