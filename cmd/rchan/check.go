package main

import (
	"fmt"
	"os"

	"github.com/rchan/rchan/internal/common/logger"
	"github.com/rchan/rchan/internal/common/output"
	"github.com/rchan/rchan/internal/scanner"
	"github.com/spf13/cobra"
)

// runCheck is the default action: scan the current directory's immediate
// subdirectories for rchan.yaml + PKGBUILD pairs and report version drift.
// Per-package failures are reported, not escalated: the scan itself exits 0
// so automation can rely on the exit code meaning "the scan ran".
func runCheck(cmd *cobra.Command, args []string) {
	cwd, err := os.Getwd()
	if err != nil {
		logger.Error("getting working directory: %v", err)
		os.Exit(1)
	}

	fmt.Printf("%s %s\n", output.Sprint(output.Title, "rchan"),
		output.Sprint(output.Dim, "- PKGBUILD update checker"))
	fmt.Printf("%s %s\n\n", output.Sprint(output.Header, "Scanning:"), cwd)

	results, err := scanner.New(nil).Scan(cwd)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	if len(results) == 0 {
		output.PrintWarning("No subdirectories with rchan.yaml + PKGBUILD found.")
		return
	}

	fmt.Print(scanner.FormatReport(results))
}
