// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package generation

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/Nyaadanbou/minecraft-versions/pkg/errors"
	"github.com/Nyaadanbou/minecraft-versions/pkg/index"
	"github.com/Nyaadanbou/minecraft-versions/pkg/version"
)

// NoneName is the name of the sentinel generation present in every catalog.
const NoneName = "NONE"

const (
	// nmsRoot is the NMS package prefix for 1.17+ (no version component).
	nmsRoot = "net.minecraft."
	// obcRoot is the OBC package prefix without the version component.
	obcRoot = "org.bukkit.craftbukkit"
)

var (
	// ErrNoneGeneration is wrapped when NONE is used as an ordering operand.
	ErrNoneGeneration = stderrors.New("generation: NONE cannot be ordered")
	// ErrNilGeneration is wrapped when a nil generation is used as an ordering operand.
	ErrNilGeneration = stderrors.New("generation: nil generation")
	// ErrCatalogMismatch is wrapped when generations of two catalogs are ordered.
	ErrCatalogMismatch = stderrors.New("generation: generations belong to different catalogs")
)

// Entry declares one generation of a catalog.
type Entry struct {
	// Name is the symbolic identifier, e.g. "v1_20_R3".
	Name string
	// Relocated marks generations whose OBC package carries the generation
	// name as an extra segment (org.bukkit.craftbukkit.v1_20_R3.*).
	Relocated bool
	// Versions are the Minecraft versions that belong to this generation.
	Versions []version.Version
}

// Generation is one immutable member of a Catalog.
type Generation struct {
	catalog   *Catalog
	name      string
	ordinal   int
	relocated bool
	versions  []version.Version
	nmsPrefix string
	obcPrefix string
}

func newGeneration(c *Catalog, ordinal int, e Entry) *Generation {
	g := &Generation{
		catalog:   c,
		name:      e.Name,
		ordinal:   ordinal,
		relocated: e.Relocated,
		versions:  make([]version.Version, len(e.Versions)),
		nmsPrefix: nmsRoot,
	}
	copy(g.versions, e.Versions)
	g.obcPrefix = obcRoot + g.packageComponent()
	return g
}

func (g *Generation) packageComponent() string {
	if g.relocated {
		return "." + g.name + "."
	}
	return "."
}

// Name returns the symbolic identifier of the generation.
func (g *Generation) Name() string { return g.name }

// String implements fmt.Stringer.
func (g *Generation) String() string {
	if g == nil {
		return "<nil>"
	}
	return g.name
}

// Ordinal returns the declaration position; NONE is always 0.
func (g *Generation) Ordinal() int { return g.ordinal }

// IsNone reports whether g is its catalog's sentinel.
func (g *Generation) IsNone() bool { return g.ordinal == 0 }

// Relocated reports whether the OBC package of this generation is relocated.
func (g *Generation) Relocated() bool { return g.relocated }

// Catalog returns the catalog g belongs to.
func (g *Generation) Catalog() *Catalog { return g.catalog }

// MemberVersions returns the versions declared for this generation.
func (g *Generation) MemberVersions() []version.Version {
	out := make([]version.Version, len(g.versions))
	copy(out, g.versions)
	return out
}

// NMSPrefix returns the package prefix for server internals.
func (g *Generation) NMSPrefix() string { return g.nmsPrefix }

// OBCPrefix returns the CraftBukkit package prefix, including the relocated
// segment when there is one.
func (g *Generation) OBCPrefix() string { return g.obcPrefix }

// NMS prepends the NMS prefix to the given class name.
func (g *Generation) NMS(className string) string {
	return g.nmsPrefix + className
}

// OBC prepends the OBC prefix to the given class name.
func (g *Generation) OBC(className string) string {
	return g.obcPrefix + className
}

// MarshalText implements encoding.TextMarshaler.
func (g *Generation) MarshalText() ([]byte, error) {
	return []byte(g.name), nil
}

func (g *Generation) checkComparable(other *Generation) error {
	switch {
	case g == nil:
		return errors.Wrap(errors.ErrCodeInvalidArgument, "this cannot be nil", ErrNilGeneration)
	case other == nil:
		return errors.Wrap(errors.ErrCodeInvalidArgument, "other cannot be nil", ErrNilGeneration)
	case g.IsNone():
		return errors.Wrap(errors.ErrCodeInvalidArgument, "this cannot be NONE", ErrNoneGeneration)
	case other.IsNone():
		return errors.Wrap(errors.ErrCodeInvalidArgument, "other cannot be NONE", ErrNoneGeneration)
	case g.catalog != other.catalog:
		return errors.WrapWithContext(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("cannot order %s against %s", g.name, other.name),
			ErrCatalogMismatch, map[string]any{
				"this":  g.catalog.name,
				"other": other.catalog.name,
			})
	}
	return nil
}

// Compare returns -1, 0 or 1 as g comes before, is, or comes after other.
// Both generations must be non-NONE members of the same catalog; otherwise
// the error carries errors.ErrCodeInvalidArgument.
func (g *Generation) Compare(other *Generation) (int, error) {
	if err := g.checkComparable(other); err != nil {
		return 0, err
	}
	switch {
	case g.ordinal < other.ordinal:
		return -1, nil
	case g.ordinal > other.ordinal:
		return 1, nil
	default:
		return 0, nil
	}
}

// IsBefore reports whether g comes before other.
func (g *Generation) IsBefore(other *Generation) (bool, error) {
	c, err := g.Compare(other)
	return err == nil && c < 0, err
}

// IsAfter reports whether g comes after other.
func (g *Generation) IsAfter(other *Generation) (bool, error) {
	c, err := g.Compare(other)
	return err == nil && c > 0, err
}

// IsBeforeOrEq reports whether g is other or comes before it.
func (g *Generation) IsBeforeOrEq(other *Generation) (bool, error) {
	c, err := g.Compare(other)
	return err == nil && c <= 0, err
}

// IsAfterOrEq reports whether g is other or comes after it.
func (g *Generation) IsAfterOrEq(other *Generation) (bool, error) {
	c, err := g.Compare(other)
	return err == nil && c >= 0, err
}

// Catalog is an ordered, immutable enumeration of generations together with
// the reverse index from version to generation.
type Catalog struct {
	name        string
	generations []*Generation
	byName      map[string]*Generation
	byVersion   map[string]*Generation
}

// NewCatalog builds a catalog from entries declared oldest first. The NONE
// sentinel is inserted at ordinal 0.
//
// Construction fails with errors.ErrCodeInvalidArgument for an empty or
// reserved entry name, and with errors.ErrCodeConflict when two entries share
// a name or claim the same version (index.ErrDuplicateKey is in the chain).
func NewCatalog(name string, entries ...Entry) (*Catalog, error) {
	c := &Catalog{
		name:        name,
		generations: make([]*Generation, 0, len(entries)+1),
	}
	c.generations = append(c.generations, newGeneration(c, 0, Entry{Name: NoneName}))

	for i, e := range entries {
		if e.Name == "" {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidArgument,
				"generation name cannot be empty", map[string]any{
					"catalog": name,
					"index":   i,
				})
		}
		if strings.EqualFold(e.Name, NoneName) {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidArgument,
				fmt.Sprintf("generation name %q is reserved", e.Name), map[string]any{
					"catalog": name,
				})
		}
		c.generations = append(c.generations, newGeneration(c, i+1, e))
	}

	byName, err := index.Build(c.generations, (*Generation).Name)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeConflict,
			"duplicate generation name", err, map[string]any{"catalog": name})
	}

	byVersion, err := index.BuildMultiple(c.generations, func(g *Generation) []string {
		keys := make([]string, 0, len(g.versions))
		for _, v := range g.versions {
			keys = append(keys, v.Key())
		}
		return keys
	})
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeConflict,
			"version claimed by more than one generation", err, map[string]any{"catalog": name})
	}

	c.byName = byName
	c.byVersion = byVersion
	return c, nil
}

// MustNewCatalog is like NewCatalog but panics on error. It is meant for
// package-level catalog tables, where an error is a bug in the table.
func MustNewCatalog(name string, entries ...Entry) *Catalog {
	c, err := NewCatalog(name, entries...)
	if err != nil {
		panic(fmt.Sprintf("MustNewCatalog(%s): %v", name, err))
	}
	return c
}

// Name returns the catalog name.
func (c *Catalog) Name() string { return c.name }

// None returns the catalog's sentinel generation.
func (c *Catalog) None() *Generation { return c.generations[0] }

// Generations returns all generations in declaration order, NONE first.
func (c *Catalog) Generations() []*Generation {
	out := make([]*Generation, len(c.generations))
	copy(out, c.generations)
	return out
}

// Get finds a generation by name. An exact match wins over a
// case-insensitive one.
func (c *Catalog) Get(name string) (*Generation, bool) {
	if g, ok := c.byName[name]; ok {
		return g, true
	}
	for _, g := range c.generations {
		if strings.EqualFold(g.name, name) {
			return g, true
		}
	}
	return nil, false
}

// MustGet is like Get but panics if the generation does not exist.
func (c *Catalog) MustGet(name string) *Generation {
	g, ok := c.Get(name)
	if !ok {
		panic(fmt.Sprintf("catalog %s has no generation %q", c.name, name))
	}
	return g
}

// Lookup returns the generation that declares v, or NONE. Only exact
// (padding-insensitive) matches count: a version between two declared
// versions is NONE, never its neighbour's generation.
func (c *Catalog) Lookup(v version.Version) *Generation {
	if g, ok := c.byVersion[v.Key()]; ok {
		return g
	}
	return c.None()
}
