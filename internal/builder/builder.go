// Package builder batch-builds every PKGBUILD directory under a base
// directory through a shared scratch area, collecting produced package
// archives into an output directory.
package builder

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rchan/rchan/internal/common/output"
	"github.com/rchan/rchan/internal/config"
	"github.com/rchan/rchan/internal/scanner"
)

// BuildResult records the outcome of building one package directory.
type BuildResult struct {
	Name      string
	Success   bool
	Message   string
	Artifacts []string
}

// Report is the final tally of a build run.
type Report struct {
	Total     int
	Succeeded int
	Failed    int
	Results   []BuildResult
}

// Builder runs the batch build.
type Builder struct {
	cfg    config.BuildConfig
	runner CommandRunner
	// progress receives per-package status lines (default os.Stdout)
	progress io.Writer
}

// New creates a Builder. A nil runner gets an ExecRunner built from cfg.
func New(cfg config.BuildConfig, runner CommandRunner) *Builder {
	if runner == nil {
		runner = NewExecRunner(cfg.Command, cfg.Args)
	}
	return &Builder{
		cfg:      cfg,
		runner:   runner,
		progress: os.Stdout,
	}
}

// SetProgressWriter redirects per-package progress lines (useful for testing).
func (b *Builder) SetProgressWriter(w io.Writer) {
	b.progress = w
}

// Discover lists the candidate directories for building: immediate
// subdirectories of base that contain a PKGBUILD, excluding the scratch and
// output areas, sorted by name. No rchan.yaml is required to build.
func (b *Builder) Discover(base string) ([]string, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", base, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if name == b.cfg.PkgsDir || name == b.cfg.BuildDir {
			continue
		}
		if _, err := os.Stat(filepath.Join(base, name, scanner.PkgbuildFile)); err != nil {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

// Build runs the full batch: for each candidate in sorted order the scratch
// area is cleared, the candidate's tree is copied in, the packaging command
// runs there, and produced archives are moved to the output area. One
// candidate failing never stops the rest. The returned error covers only
// infrastructure failures (unreadable base, scratch area maintenance).
func (b *Builder) Build(base string) (*Report, error) {
	pkgsDir := filepath.Join(base, b.cfg.PkgsDir)
	buildDir := filepath.Join(base, b.cfg.BuildDir)

	if err := os.MkdirAll(pkgsDir, 0755); err != nil {
		return nil, fmt.Errorf("creating %s directory: %w", b.cfg.PkgsDir, err)
	}
	if err := os.MkdirAll(buildDir, 0755); err != nil {
		return nil, fmt.Errorf("creating %s directory: %w", b.cfg.BuildDir, err)
	}

	names, err := b.Discover(base)
	if err != nil {
		return nil, err
	}

	report := &Report{Total: len(names)}

	for i, name := range names {
		fmt.Fprintf(b.progress, "[%d/%d] %s %s\n", i+1, len(names),
			output.Sprint(output.Info, "Building"),
			output.Sprint(output.Package, name))

		result := b.buildOne(base, name, buildDir, pkgsDir)
		report.Results = append(report.Results, result)
		if result.Success {
			report.Succeeded++
		} else {
			report.Failed++
		}
	}

	// Leave the scratch area empty for the next run
	if err := CleanDir(buildDir); err != nil {
		return report, fmt.Errorf("cleaning %s directory: %w", b.cfg.BuildDir, err)
	}

	return report, nil
}

// buildOne builds a single candidate through the scratch area.
func (b *Builder) buildOne(base, name, buildDir, pkgsDir string) BuildResult {
	result := BuildResult{Name: name}

	if err := CleanDir(buildDir); err != nil {
		result.Message = fmt.Sprintf("failed to clean build directory: %v", err)
		b.printFailure(result.Message)
		return result
	}

	if err := CopyDirContents(filepath.Join(base, name), buildDir); err != nil {
		result.Message = fmt.Sprintf("failed to copy files: %v", err)
		b.printFailure(result.Message)
		return result
	}

	if err := b.runner.Run(buildDir); err != nil {
		result.Message = fmt.Sprintf("%v", err)
		b.printFailure(result.Message)
		return result
	}

	artifacts, err := b.collectArtifacts(buildDir, pkgsDir)
	if err != nil {
		result.Message = fmt.Sprintf("failed to collect artifacts: %v", err)
		b.printFailure(result.Message)
		return result
	}

	if len(artifacts) == 0 {
		result.Message = fmt.Sprintf("no %s found after build", b.cfg.ArtifactSuffix)
		fmt.Fprintf(b.progress, "  %s %s\n\n",
			output.Sprint(output.Warning, "WARN"), result.Message)
		return result
	}

	result.Success = true
	result.Artifacts = artifacts
	fmt.Fprintf(b.progress, "  %s\n\n", output.Sprint(output.Success, "OK"))
	return result
}

// collectArtifacts moves produced package archives from the scratch area to
// the output area, matched by filename suffix only.
func (b *Builder) collectArtifacts(buildDir, pkgsDir string) ([]string, error) {
	entries, err := os.ReadDir(buildDir)
	if err != nil {
		return nil, err
	}

	var artifacts []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, b.cfg.ArtifactSuffix) {
			continue
		}

		if err := os.Rename(filepath.Join(buildDir, name), filepath.Join(pkgsDir, name)); err != nil {
			return artifacts, fmt.Errorf("moving %s: %w", name, err)
		}
		fmt.Fprintf(b.progress, "  %s %s\n",
			output.Sprint(output.Success, "->"),
			output.Sprint(output.Success, name))
		artifacts = append(artifacts, name)
	}

	return artifacts, nil
}

func (b *Builder) printFailure(msg string) {
	fmt.Fprintf(b.progress, "  %s %s\n\n", output.Sprint(output.Failed, "FAIL"), msg)
}

// FormatSummary renders the closing tally line for a build run.
func FormatSummary(report *Report) string {
	return fmt.Sprintf("%s: %d packages, %s succeeded, %s failed",
		output.Sprint(output.Header, "Summary"),
		report.Total,
		output.Sprint(output.Success, fmt.Sprintf("%d", report.Succeeded)),
		output.Sprint(output.Error, fmt.Sprintf("%d", report.Failed)))
}
