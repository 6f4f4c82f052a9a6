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

package resolver

import (
	"sort"
	"strings"

	"github.com/Nyaadanbou/minecraft-versions/pkg/generation"
	"github.com/Nyaadanbou/minecraft-versions/pkg/host"
	"github.com/Nyaadanbou/minecraft-versions/pkg/minecraft"
	"github.com/Nyaadanbou/minecraft-versions/pkg/nmsversion"
	"github.com/Nyaadanbou/minecraft-versions/pkg/packageversion"
	"github.com/Nyaadanbou/minecraft-versions/pkg/version"
)

// Catalogs returns every generation catalog, keyed by catalog name.
func Catalogs() map[string]*generation.Catalog {
	return map[string]*generation.Catalog{
		packageversion.CatalogName: packageversion.Catalog,
		nmsversion.CatalogName:     nmsversion.Catalog,
	}
}

// CatalogNames returns the catalog names in sorted order.
func CatalogNames() []string {
	names := make([]string, 0, 2)
	for name := range Catalogs() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Catalog returns the catalog with the given name (case-insensitive).
func Catalog(name string) (*generation.Catalog, bool) {
	c, ok := Catalogs()[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// GenerationReport describes one generation.
type GenerationReport struct {
	Catalog   string   `json:"catalog" yaml:"catalog"`
	Name      string   `json:"name" yaml:"name"`
	Ordinal   int      `json:"ordinal" yaml:"ordinal"`
	None      bool     `json:"none" yaml:"none"`
	Relocated bool     `json:"relocated" yaml:"relocated"`
	Versions  []string `json:"versions" yaml:"versions"`
	NMSPrefix string   `json:"nmsPrefix" yaml:"nmsPrefix"`
	OBCPrefix string   `json:"obcPrefix" yaml:"obcPrefix"`
}

// DescribeGeneration returns the report of g.
func DescribeGeneration(g *generation.Generation) GenerationReport {
	members := g.MemberVersions()
	versions := make([]string, 0, len(members))
	for _, v := range members {
		versions = append(versions, v.String())
	}
	return GenerationReport{
		Catalog:   g.Catalog().Name(),
		Name:      g.Name(),
		Ordinal:   g.Ordinal(),
		None:      g.IsNone(),
		Relocated: g.Relocated(),
		Versions:  versions,
		NMSPrefix: g.NMSPrefix(),
		OBCPrefix: g.OBCPrefix(),
	}
}

// DescribeCatalog returns the reports of every generation of c, NONE first.
func DescribeCatalog(c *generation.Catalog) []GenerationReport {
	gens := c.Generations()
	out := make([]GenerationReport, 0, len(gens))
	for _, g := range gens {
		out = append(out, DescribeGeneration(g))
	}
	return out
}

// Report describes a version and its generation in every catalog.
type Report struct {
	Version  string           `json:"version" yaml:"version"`
	Key      string           `json:"key" yaml:"key"`
	Known    bool             `json:"known" yaml:"known"`
	Symbol   string           `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Package  GenerationReport `json:"package" yaml:"package"`
	NMS      GenerationReport `json:"nms" yaml:"nms"`
	Source   string           `json:"source,omitempty" yaml:"source,omitempty"`
	Reported string           `json:"reported,omitempty" yaml:"reported,omitempty"`
	Fallback bool             `json:"fallback,omitempty" yaml:"fallback,omitempty"`
}

// Describe returns the report of v.
func Describe(v version.Version) Report {
	rep := Report{
		Version: v.String(),
		Key:     v.Key(),
		Known:   minecraft.IsKnown(v),
		Package: DescribeGeneration(packageversion.ForMinecraftVersion(v)),
		NMS:     DescribeGeneration(nmsversion.ForMinecraftVersion(v)),
	}
	if rep.Known {
		rep.Symbol = minecraft.Symbol(v)
	}
	return rep
}

// Report returns the report of the resolution, including where the
// version came from.
func (r *Resolution) Report() Report {
	rep := Describe(r.Version)
	rep.Source = r.Source
	rep.Reported = r.Reported
	rep.Fallback = r.Fallback
	return rep
}

// ConfigMapData publishes the version under the key read by
// host.ConfigMap, so a report written to cm://ns/name can serve as the
// host source of other processes.
func (r Report) ConfigMapData() map[string]string {
	return map[string]string{host.DefaultConfigMapKey: r.Version}
}
