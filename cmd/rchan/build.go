package main

import (
	"fmt"
	"os"

	"github.com/rchan/rchan/internal/builder"
	"github.com/rchan/rchan/internal/common/logger"
	"github.com/rchan/rchan/internal/common/output"
	"github.com/rchan/rchan/internal/config"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build every PKGBUILD subdirectory",
	Long: `Build each immediate subdirectory of the current directory that contains
a PKGBUILD. Every candidate is copied into a scratch build area, the
packaging command runs there, and produced package archives are moved
into the pkgs directory.

Individual build failures are counted in the summary; the command still
exits 0 so one broken package never aborts a batch.`,
	Args: cobra.NoArgs,
	Run:  runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("loading config: %v", err)
		os.Exit(1)
	}

	cwd, err := os.Getwd()
	if err != nil {
		logger.Error("getting working directory: %v", err)
		os.Exit(1)
	}

	fmt.Printf("%s %s\n", output.Sprint(output.Title, "rchan build"),
		output.Sprint(output.Dim, "- PKGBUILD batch builder"))
	fmt.Printf("%s %s\n\n", output.Sprint(output.Header, "Working directory:"), cwd)

	report, err := builder.New(cfg.Build, nil).Build(cwd)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	if report.Total == 0 {
		output.PrintWarning("No subdirectories with PKGBUILD found.")
		return
	}

	fmt.Println(builder.FormatSummary(report))
}
