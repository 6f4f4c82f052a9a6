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

package host

import "regexp"

var (
	// matches the "(MC: 1.20.4)" suffix of Paper and Spigot version strings
	mcTagPattern  = regexp.MustCompile(`\(MC: (\d+(?:\.\d+)+)\)`)
	dottedPattern = regexp.MustCompile(`\d+(?:\.\d+)+`)
)

// ExtractVersion pulls the Minecraft version out of a branded server
// version string. "(MC: x.y.z)" wins over any other dotted number, so
// "git-Paper-496 (MC: 1.20.4)" yields "1.20.4"; otherwise the first
// dotted number is used ("Paper 1.20.4", "1.20.4-R0.1-SNAPSHOT").
// It returns false if text contains no dotted number.
func ExtractVersion(text string) (string, bool) {
	if m := mcTagPattern.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	if m := dottedPattern.FindString(text); m != "" {
		return m, true
	}
	return "", false
}

// extractOrRaw returns the extracted version, or text unchanged so that
// parsing reports it as malformed.
func extractOrRaw(text string) string {
	if v, ok := ExtractVersion(text); ok {
		return v
	}
	return text
}
