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

// Package nmsversion catalogs the generations in which server internals
// (net.minecraft and org.bukkit.craftbukkit) changed significantly.
//
// Generations up to v1_20_R3 use relocated CraftBukkit packages. From
// v1_20_R4 on, CraftBukkit classes live directly under
// org.bukkit.craftbukkit.
package nmsversion

import (
	"github.com/Nyaadanbou/minecraft-versions/pkg/generation"
	"github.com/Nyaadanbou/minecraft-versions/pkg/minecraft"
	"github.com/Nyaadanbou/minecraft-versions/pkg/version"
)

// CatalogName identifies this catalog in reports, flags and URLs.
const CatalogName = "nms"

// Catalog holds the internals generations in chronological order.
var Catalog = generation.MustNewCatalog(CatalogName,
	generation.Entry{Name: "v1_17_R1", Relocated: true, Versions: []version.Version{minecraft.V1_17, minecraft.V1_17_1}},
	generation.Entry{Name: "v1_18_R2", Relocated: true, Versions: []version.Version{minecraft.V1_18_2}},
	generation.Entry{Name: "v1_19_R3", Relocated: true, Versions: []version.Version{minecraft.V1_19_4}},
	generation.Entry{Name: "v1_20_R3", Relocated: true, Versions: []version.Version{minecraft.V1_20_3, minecraft.V1_20_4}},
	generation.Entry{Name: "v1_20_R4", Versions: []version.Version{minecraft.V1_20_5, minecraft.V1_20_6}},
	generation.Entry{Name: "v1_21_R1", Versions: []version.Version{minecraft.V1_21, minecraft.V1_21_1}},
)

var (
	None     = Catalog.None()
	V1_17_R1 = Catalog.MustGet("v1_17_R1")
	V1_18_R2 = Catalog.MustGet("v1_18_R2")
	V1_19_R3 = Catalog.MustGet("v1_19_R3")
	V1_20_R3 = Catalog.MustGet("v1_20_R3")
	V1_20_R4 = Catalog.MustGet("v1_20_R4")
	V1_21_R1 = Catalog.MustGet("v1_21_R1")
)

// ForMinecraftVersion returns the generation that contains v, or None.
func ForMinecraftVersion(v version.Version) *generation.Generation {
	return Catalog.Lookup(v)
}

// Get returns the generation with the given name.
func Get(name string) (*generation.Generation, bool) {
	return Catalog.Get(name)
}

// Generations returns every generation including None.
func Generations() []*generation.Generation {
	return Catalog.Generations()
}
