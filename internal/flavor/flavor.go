// Package flavor holds the compiled-in catalog of build flavors.
package flavor

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Flavor is a named build configuration. Name doubles as the build directory
// name and as the suffix of the installation prefix.
type Flavor struct {
	Name    string
	Options []string
	Env     map[string]string
}

func (f Flavor) clone() Flavor {
	return Flavor{
		Name:    f.Name,
		Options: slices.Clone(f.Options),
		Env:     maps.Clone(f.Env),
	}
}

// Catalog is an ordered, read-only set of flavors with unique names.
type Catalog struct {
	flavors []Flavor
}

// NewCatalog validates flavors and returns them as a catalog in the given order.
func NewCatalog(flavors ...Flavor) (*Catalog, error) {
	seen := make(map[string]struct{}, len(flavors))
	c := &Catalog{flavors: make([]Flavor, 0, len(flavors))}
	for i, f := range flavors {
		if err := validName(f.Name); err != nil {
			return nil, fmt.Errorf("flavor #%d: %w", i, err)
		}
		if _, ok := seen[f.Name]; ok {
			return nil, fmt.Errorf("flavor %q: duplicate name", f.Name)
		}
		seen[f.Name] = struct{}{}
		c.flavors = append(c.flavors, f.clone())
	}
	return c, nil
}

func validName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("empty name")
	case name == "." || name == "..":
		return fmt.Errorf("invalid name %q", name)
	case strings.ContainsAny(name, `/\`+"\x00"):
		return fmt.Errorf("name %q is not a valid directory name", name)
	}
	return nil
}

// List returns the flavors in declaration order. The result is a copy.
func (c *Catalog) List() []Flavor {
	out := make([]Flavor, len(c.flavors))
	for i, f := range c.flavors {
		out[i] = f.clone()
	}
	return out
}

// Names returns the flavor names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.flavors))
	for i, f := range c.flavors {
		names[i] = f.Name
	}
	return names
}

// Lookup returns the flavor called name.
func (c *Catalog) Lookup(name string) (Flavor, bool) {
	for _, f := range c.flavors {
		if f.Name == name {
			return f.clone(), true
		}
	}
	return Flavor{}, false
}

// Select returns the flavors named in names, kept in catalog order.
// An empty names selects everything.
func (c *Catalog) Select(names []string) ([]Flavor, error) {
	if len(names) == 0 {
		return c.List(), nil
	}
	want := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := c.Lookup(name); !ok {
			return nil, fmt.Errorf("unknown flavor %q (have %s)", name, strings.Join(c.Names(), ", "))
		}
		want[name] = true
	}
	var out []Flavor
	for _, f := range c.flavors {
		if want[f.Name] {
			out = append(out, f.clone())
		}
	}
	return out, nil
}
