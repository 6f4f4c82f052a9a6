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

// Package minecraft holds the Minecraft versions this module has explicit
// knowledge of.
//
// Every constant is parsed once at package initialization with
// version.MustParse; an invalid literal panics during init, so a process with
// a broken table never starts.
package minecraft

import (
	"strings"

	"github.com/Nyaadanbou/minecraft-versions/pkg/version"
)

// NewestVersion is the newest Minecraft version known to this module. It is
// the runtime version assumed when no server is present, e.g. in tests.
const NewestVersion = "1.21.4"

var (
	V1_21_4 = version.MustParse("1.21.4")
	V1_21_3 = version.MustParse("1.21.3")
	V1_21_2 = version.MustParse("1.21.2")
	V1_21_1 = version.MustParse("1.21.1")
	V1_21   = version.MustParse("1.21")

	V1_20_6 = version.MustParse("1.20.6")
	V1_20_5 = version.MustParse("1.20.5")
	V1_20_4 = version.MustParse("1.20.4")
	V1_20_3 = version.MustParse("1.20.3")
	V1_20   = version.MustParse("1.20")

	V1_19_4 = version.MustParse("1.19.4")
	V1_19   = version.MustParse("1.19")

	V1_18_2 = version.MustParse("1.18.2")
	V1_18   = version.MustParse("1.18")

	V1_17_1 = version.MustParse("1.17.1")
	V1_17   = version.MustParse("1.17")
)

// Newest is NewestVersion parsed.
var Newest = version.MustParse(NewestVersion)

// known lists every named version, oldest first.
var known = []version.Version{
	V1_17, V1_17_1,
	V1_18, V1_18_2,
	V1_19, V1_19_4,
	V1_20, V1_20_3, V1_20_4, V1_20_5, V1_20_6,
	V1_21, V1_21_1, V1_21_2, V1_21_3, V1_21_4,
}

var byKey = func() map[string]version.Version {
	m := make(map[string]version.Version, len(known))
	for _, v := range known {
		m[v.Key()] = v
	}
	return m
}()

// Versions returns every known version in ascending order.
func Versions() []version.Version {
	out := make([]version.Version, len(known))
	copy(out, known)
	return out
}

// IsKnown reports whether v equals one of the named versions.
func IsKnown(v version.Version) bool {
	_, ok := byKey[v.Key()]
	return ok
}

// Lookup finds a known version by its symbolic name ("v1_20_4") or its
// dotted form ("1.20.4").
func Lookup(name string) (version.Version, bool) {
	s := strings.TrimPrefix(strings.TrimPrefix(name, "v"), "V")
	s = strings.ReplaceAll(s, "_", version.Separator)
	v, err := version.Parse(s)
	if err != nil {
		return version.Version{}, false
	}
	kv, ok := byKey[v.Key()]
	return kv, ok
}

// Symbol returns the symbolic constant name for v, e.g. "v1_20_4".
func Symbol(v version.Version) string {
	return "v" + strings.ReplaceAll(v.String(), version.Separator, "_")
}
