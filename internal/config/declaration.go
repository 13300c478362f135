package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DeclarationFile is the fixed name of the per-package declaration file.
const DeclarationFile = "rchan.yaml"

// ErrMissingRemote is returned when rchan.yaml lacks the remote_pkgbuild key
var ErrMissingRemote = errors.New("missing required field: remote_pkgbuild")

// Declaration is the per-package rchan.yaml document. It names the canonical
// remote PKGBUILD the local copy is tracked against. Unknown keys are
// ignored so the format can grow without breaking older binaries.
type Declaration struct {
	RemotePkgbuild string `yaml:"remote_pkgbuild"`
}

// LoadDeclaration reads and parses an rchan.yaml file.
func LoadDeclaration(path string) (*Declaration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var decl Declaration
	if err := yaml.Unmarshal(data, &decl); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if decl.RemotePkgbuild == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrMissingRemote)
	}

	return &decl, nil
}
