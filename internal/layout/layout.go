// Package layout derives the source, output and installation paths of a run.
package layout

import (
	"fmt"
	"path/filepath"
)

const (
	DefaultPrefixRoot = "/usr/local/stow"
	DefaultProduct    = "cm4all-beng-proxy"
	outputDirName     = "output"
)

// ResolveSourceRoot returns the project root for an entry point located at
// entry: the parent of the directory containing it.
func ResolveSourceRoot(entry string) (string, error) {
	dir := filepath.Dir(entry)
	if dir == "" {
		dir = "."
	}
	root, err := filepath.Abs(filepath.Join(dir, ".."))
	if err != nil {
		return "", fmt.Errorf("failed to resolve source root from %s: %w", entry, err)
	}
	return root, nil
}

// Layout holds the fixed roots of a run. All per-flavor paths are derived.
type Layout struct {
	SourceRoot string
	PrefixRoot string
	Product    string
}

// New returns a Layout for sourceRoot with the default prefix root and product.
func New(sourceRoot string) Layout {
	return Layout{
		SourceRoot: sourceRoot,
		PrefixRoot: DefaultPrefixRoot,
		Product:    DefaultProduct,
	}
}

func (l Layout) OutputRoot() string {
	return filepath.Join(l.SourceRoot, outputDirName)
}

// BuildDir is the output tree owned by the given flavor.
func (l Layout) BuildDir(flavor string) string {
	return filepath.Join(l.OutputRoot(), flavor)
}

// Prefix is the installation prefix handed to the generator for flavor.
// It is never created here.
func (l Layout) Prefix(flavor string) string {
	return filepath.Join(l.PrefixRoot, l.Product+"-"+flavor)
}
