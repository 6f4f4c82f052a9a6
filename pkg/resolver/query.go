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
	"fmt"
	"strings"

	"github.com/Nyaadanbou/minecraft-versions/pkg/errors"
	"github.com/Nyaadanbou/minecraft-versions/pkg/generation"
	"github.com/Nyaadanbou/minecraft-versions/pkg/minecraft"
	"github.com/Nyaadanbou/minecraft-versions/pkg/version"
)

// Relations reported by Comparison and OrderReport.
const (
	RelationBefore = "before"
	RelationEqual  = "equal"
	RelationAfter  = "after"
)

// Class name kinds accepted by ClassName.
const (
	ClassKindNMS = "nms"
	ClassKindOBC = "obc"
)

// ParseVersion parses s, accepting a registry symbol such as v1_20_4 as
// well as a dotted version. Failures carry INVALID_REQUEST.
func ParseVersion(s string) (version.Version, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "_") {
		if v, ok := minecraft.Lookup(s); ok {
			return v, nil
		}
	}
	v, err := version.Parse(s)
	if err != nil {
		return version.Version{}, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid version %q", s), err, map[string]any{"version": s})
	}
	return v, nil
}

// Comparison is the outcome of comparing two versions.
type Comparison struct {
	A        string `json:"a" yaml:"a"`
	B        string `json:"b" yaml:"b"`
	Result   int    `json:"result" yaml:"result"`
	Relation string `json:"relation" yaml:"relation"`
}

// CompareVersions parses and compares a and b.
func CompareVersions(a, b string) (Comparison, error) {
	va, err := ParseVersion(a)
	if err != nil {
		return Comparison{}, err
	}
	vb, err := ParseVersion(b)
	if err != nil {
		return Comparison{}, err
	}
	c := va.Compare(vb)
	return Comparison{A: va.String(), B: vb.String(), Result: c, Relation: relation(c)}, nil
}

func relation(c int) string {
	switch {
	case c < 0:
		return RelationBefore
	case c > 0:
		return RelationAfter
	default:
		return RelationEqual
	}
}

// LookupCatalog returns the named catalog or a NOT_FOUND error.
func LookupCatalog(name string) (*generation.Catalog, error) {
	c, ok := Catalog(name)
	if !ok {
		return nil, errors.NewWithContext(errors.ErrCodeNotFound,
			fmt.Sprintf("unknown catalog %q", name),
			map[string]any{"catalog": name, "catalogs": CatalogNames()})
	}
	return c, nil
}

// LookupGeneration returns the named generation of c. A name that is not a
// generation but parses as a version is resolved through c.Lookup, so
// "1.20.4" and "v1_20_R3" name the same generation.
func LookupGeneration(c *generation.Catalog, name string) (*generation.Generation, error) {
	name = strings.TrimSpace(name)
	if g, ok := c.Get(name); ok {
		return g, nil
	}
	if v, err := ParseVersion(name); err == nil {
		return c.Lookup(v), nil
	}
	return nil, errors.NewWithContext(errors.ErrCodeNotFound,
		fmt.Sprintf("unknown %s generation %q", c.Name(), name),
		map[string]any{"catalog": c.Name(), "generation": name})
}

// OrderReport is the outcome of ordering two generations of one catalog.
type OrderReport struct {
	Catalog      string `json:"catalog" yaml:"catalog"`
	A            string `json:"a" yaml:"a"`
	B            string `json:"b" yaml:"b"`
	Relation     string `json:"relation" yaml:"relation"`
	IsBefore     bool   `json:"isBefore" yaml:"isBefore"`
	IsBeforeOrEq bool   `json:"isBeforeOrEq" yaml:"isBeforeOrEq"`
	IsAfter      bool   `json:"isAfter" yaml:"isAfter"`
	IsAfterOrEq  bool   `json:"isAfterOrEq" yaml:"isAfterOrEq"`
}

// Order looks up a and b in the named catalog and orders them. Either side
// resolving to NONE fails with INVALID_ARGUMENT.
func Order(catalog, a, b string) (OrderReport, error) {
	c, err := LookupCatalog(catalog)
	if err != nil {
		return OrderReport{}, err
	}
	ga, err := LookupGeneration(c, a)
	if err != nil {
		return OrderReport{}, err
	}
	gb, err := LookupGeneration(c, b)
	if err != nil {
		return OrderReport{}, err
	}

	cmp, err := ga.Compare(gb)
	if err != nil {
		return OrderReport{}, err
	}
	return OrderReport{
		Catalog:      c.Name(),
		A:            ga.Name(),
		B:            gb.Name(),
		Relation:     relation(cmp),
		IsBefore:     cmp < 0,
		IsBeforeOrEq: cmp <= 0,
		IsAfter:      cmp > 0,
		IsAfterOrEq:  cmp >= 0,
	}, nil
}

// ClassName returns the fully qualified name of className under generation
// g of the named catalog. kind selects the NMS or OBC package root.
func ClassName(catalog, g, kind, className string) (string, error) {
	className = strings.TrimSpace(className)
	if className == "" {
		return "", errors.New(errors.ErrCodeInvalidRequest, "class name cannot be empty")
	}
	c, err := LookupCatalog(catalog)
	if err != nil {
		return "", err
	}
	gen, err := LookupGeneration(c, g)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(strings.TrimSpace(kind)) {
	case ClassKindNMS, "":
		return gen.NMS(className), nil
	case ClassKindOBC:
		return gen.OBC(className), nil
	default:
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown class kind %q, expected %s or %s", kind, ClassKindNMS, ClassKindOBC),
			map[string]any{"kind": kind})
	}
}

// DescribeAll returns the generation reports of every catalog.
func DescribeAll() map[string][]GenerationReport {
	out := make(map[string][]GenerationReport, 2)
	for name, c := range Catalogs() {
		out[name] = DescribeCatalog(c)
	}
	return out
}

// KnownVersions returns the report of every registered version, oldest
// first.
func KnownVersions() []Report {
	versions := minecraft.Versions()
	out := make([]Report, 0, len(versions))
	for _, v := range versions {
		out = append(out, Describe(v))
	}
	return out
}
