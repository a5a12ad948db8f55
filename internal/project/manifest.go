package project

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file name of a package manifest.
const ManifestName = "leo.toml"

var (
	// ErrPackageSectionMissing indicates that [package] is missing in a manifest.
	ErrPackageSectionMissing = errors.New("missing [package]")
	// ErrPackageNameMissing indicates that [package].name is missing in a manifest.
	ErrPackageNameMissing = errors.New("missing [package].name")
)

// Manifest describes a package's leo.toml [package] section.
type Manifest struct {
	Name    string
	Version string
}

type manifestFile struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
}

// LoadManifest parses a leo.toml manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	if cfg.Package.Name == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	return &Manifest{
		Name:    cfg.Package.Name,
		Version: cfg.Package.Version,
	}, nil
}
