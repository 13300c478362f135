// Package pkgbuild extracts version information from PKGBUILD files,
// either read from the local filesystem or fetched from a remote URL.
package pkgbuild

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

var (
	// ErrMissingPkgver is returned when no pkgver= assignment is found
	ErrMissingPkgver = errors.New("pkgver not found in PKGBUILD")
	// ErrMissingPkgrel is returned when no pkgrel= assignment is found
	ErrMissingPkgrel = errors.New("pkgrel not found in PKGBUILD")
)

// Per the Arch packaging guidelines both fields are plain unquoted
// assignments anchored at column 0:
//
//	pkgver=1.02.3
//	pkgrel=1
//
// Anything else in the file (functions, arrays, comments) is ignored, so a
// PKGBUILD full of shell constructs we cannot evaluate still parses.
var (
	pkgverRegex = regexp.MustCompile(`(?m)^pkgver=([0-9][0-9.]*)`)
	pkgrelRegex = regexp.MustCompile(`(?m)^pkgrel=([0-9]+)`)
)

// Parse extracts pkgver and pkgrel from PKGBUILD content.
// The first matching assignment wins for each field; the two fields are
// located independently, pkgver first. The content is treated as opaque
// text and never evaluated.
func Parse(content string) (Version, error) {
	ver := pkgverRegex.FindStringSubmatch(content)
	if ver == nil {
		return Version{}, ErrMissingPkgver
	}

	rel := pkgrelRegex.FindStringSubmatch(content)
	if rel == nil {
		return Version{}, ErrMissingPkgrel
	}

	return Version{Pkgver: ver[1], Pkgrel: rel[1]}, nil
}

// ParseLocal reads a PKGBUILD from disk and extracts its version.
func ParseLocal(path string) (Version, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Version{}, fmt.Errorf("reading PKGBUILD %s: %w", path, err)
	}
	return Parse(string(data))
}
