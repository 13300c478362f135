// Package scanner checks local PKGBUILD directories against their declared
// remote counterparts and reports which packages are out of date.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rchan/rchan/internal/config"
	"github.com/rchan/rchan/internal/pkgbuild"
)

// PkgbuildFile is the fixed name of the build recipe file.
const PkgbuildFile = "PKGBUILD"

// Status indicates the outcome of checking a single package.
type Status int

const (
	// StatusUpdated means the remote version differs from the local one
	StatusUpdated Status = iota
	// StatusUpToDate means local and remote versions match exactly
	StatusUpToDate
	// StatusFailed means some step of the check failed
	StatusFailed
)

// String returns a human-readable status
func (s Status) String() string {
	switch s {
	case StatusUpdated:
		return "updated"
	case StatusUpToDate:
		return "up-to-date"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of checking one candidate directory.
// Exactly one is produced per candidate. LocalVersion and RemoteVersion are
// canonical "pkgver-pkgrel" strings; Message is only set for StatusFailed.
type Result struct {
	Name          string
	Status        Status
	LocalVersion  string
	RemoteVersion string
	Message       string
}

// Scanner checks candidate directories for updates.
type Scanner struct {
	fetcher *pkgbuild.Fetcher
}

// New creates a Scanner. A nil fetcher gets the default HTTP fetcher.
func New(fetcher *pkgbuild.Fetcher) *Scanner {
	if fetcher == nil {
		fetcher = pkgbuild.NewFetcher()
	}
	return &Scanner{fetcher: fetcher}
}

// Scan checks every immediate subdirectory of base that contains both an
// rchan.yaml and a PKGBUILD. Candidates are fully isolated: a failure in one
// never affects the others. Results come back sorted by package name.
// Only listing base itself can fail.
func (s *Scanner) Scan(base string) ([]Result, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", base, err)
	}

	var results []Result
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(base, entry.Name())
		declPath := filepath.Join(dir, config.DeclarationFile)
		pkgbuildPath := filepath.Join(dir, PkgbuildFile)

		// Not a candidate without both files
		if !fileExists(declPath) || !fileExists(pkgbuildPath) {
			continue
		}

		results = append(results, s.checkPackage(entry.Name(), declPath, pkgbuildPath))
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})

	return results, nil
}

// checkPackage runs the per-candidate pipeline: declaration, local parse,
// remote fetch, compare. The first failing step determines the outcome.
func (s *Scanner) checkPackage(name, declPath, pkgbuildPath string) Result {
	decl, err := config.LoadDeclaration(declPath)
	if err != nil {
		return Result{
			Name:    name,
			Status:  StatusFailed,
			Message: fmt.Sprintf("failed to parse %s: %v", config.DeclarationFile, err),
		}
	}

	localVer, err := pkgbuild.ParseLocal(pkgbuildPath)
	if err != nil {
		return Result{
			Name:    name,
			Status:  StatusFailed,
			Message: fmt.Sprintf("failed to parse local PKGBUILD: %v", err),
		}
	}

	remoteVer, err := s.fetcher.ParseRemote(decl.RemotePkgbuild)
	if err != nil {
		return Result{
			Name:    name,
			Status:  StatusFailed,
			Message: fmt.Sprintf("failed to fetch remote PKGBUILD: %v", err),
		}
	}

	if localVer.Equal(remoteVer) {
		return Result{
			Name:         name,
			Status:       StatusUpToDate,
			LocalVersion: localVer.String(),
		}
	}

	return Result{
		Name:          name,
		Status:        StatusUpdated,
		LocalVersion:  localVer.String(),
		RemoteVersion: remoteVer.String(),
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
