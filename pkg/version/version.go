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

package version

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Separator delimits the numeric components of a version string.
const Separator = "."

// Error types for version parsing failures
var (
	ErrEmptyVersion       = errors.New("version string is empty")
	ErrMalformedDelimiter = errors.New("version has an empty component")
	ErrNonNumeric         = errors.New("version component is not numeric")
	ErrNegativeComponent  = errors.New("version component cannot be negative")
	ErrComponentOverflow  = errors.New("version component is out of range")
)

// ParseError reports a version string that could not be parsed.
// Err is one of the sentinel errors above, possibly wrapped with detail,
// so errors.Is(err, ErrNonNumeric) and friends work on the returned error.
type ParseError struct {
	Input string
	Err   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid version %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Version is an immutable dotted sequence of non-negative integers such as
// 1.21 or 1.20.4. Any number of components is accepted.
//
// Equality and ordering treat missing trailing components as zero, so 1.21
// and 1.21.0 are equal and share the same Key. String, on the other hand,
// renders exactly the components the value was built from.
//
// The zero Version has no components; it compares equal to 0 and renders as "".
type Version struct {
	parts []int
}

// New creates a Version from the given components.
// It panics if any component is negative.
func New(components ...int) Version {
	for _, c := range components {
		if c < 0 {
			panic(fmt.Sprintf("version.New: negative component %d", c))
		}
	}
	return Version{parts: slices.Clone(components)}
}

// Parse parses a dotted numeric version string such as "1.20.4".
//
// Every component must consist of ASCII digits only: prefixes like "v",
// signs, whitespace and suffixes are rejected. Leading, trailing or
// consecutive separators are rejected as well. The returned error is always
// a *ParseError.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, &ParseError{Input: s, Err: ErrEmptyVersion}
	}

	fields := strings.Split(s, Separator)
	parts := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := parseComponent(field)
		if err != nil {
			return Version{}, &ParseError{Input: s, Err: err}
		}
		parts = append(parts, n)
	}

	return Version{parts: parts}, nil
}

func parseComponent(field string) (int, error) {
	if field == "" {
		return 0, ErrMalformedDelimiter
	}
	if field[0] == '-' && len(field) > 1 && isDigits(field[1:]) {
		return 0, fmt.Errorf("%w: %s", ErrNegativeComponent, field)
	}
	if !isDigits(field) {
		return 0, fmt.Errorf("%w: %q", ErrNonNumeric, field)
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrComponentOverflow, field)
	}
	return n, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MustParse parses a version string and panics if parsing fails.
//
// Only use this for hardcoded strings or in tests. For user input or runtime data,
// always use Parse and handle errors explicitly.
//
//	var V1_20_4 = version.MustParse("1.20.4") // OK for package-level constants
//	v, err := version.Parse(reported)         // Required for runtime data
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// String returns the dotted form built from exactly the components the
// Version was created with.
func (v Version) String() string {
	if len(v.parts) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range v.parts {
		if i > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(strconv.Itoa(p))
	}
	return b.String()
}

// Key returns a padding-normalized identity for the version: trailing zero
// components are dropped (keeping at least one). Two versions are Equal if
// and only if their keys are equal, which makes Key suitable for map keys.
func (v Version) Key() string {
	n := len(v.parts)
	for n > 1 && v.parts[n-1] == 0 {
		n--
	}
	if n == 0 {
		return "0"
	}
	return Version{parts: v.parts[:n]}.String()
}

// Components returns a copy of the version components.
func (v Version) Components() []int {
	return slices.Clone(v.parts)
}

// Len returns the number of components the version was created with.
func (v Version) Len() int {
	return len(v.parts)
}

// IsZero reports whether the version has no components.
func (v Version) IsZero() bool {
	return len(v.parts) == 0
}

// Major returns the first component, or 0 if absent.
func (v Version) Major() int { return v.at(0) }

// Minor returns the second component, or 0 if absent.
func (v Version) Minor() int { return v.at(1) }

// Patch returns the third component, or 0 if absent.
func (v Version) Patch() int { return v.at(2) }

func (v Version) at(i int) int {
	if i < len(v.parts) {
		return v.parts[i]
	}
	return 0
}

// Compare returns an integer comparing two versions:
// -1 if v < other, 0 if v == other, 1 if v > other.
// Components missing from the shorter version compare as zero.
func (v Version) Compare(other Version) int {
	n := max(len(v.parts), len(other.parts))
	for i := 0; i < n; i++ {
		a, b := v.at(i), other.at(i)
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
	}
	return 0
}

// Compare is the function form of Version.Compare, usable with slices.SortFunc.
func Compare(a, b Version) int {
	return a.Compare(b)
}

// Equals returns true if v and other are equal after zero padding.
func (v Version) Equals(other Version) bool {
	return v.Compare(other) == 0
}

// Less returns true if v is strictly older than other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// IsNewer returns true if v is strictly newer than other.
func (v Version) IsNewer(other Version) bool {
	return v.Compare(other) > 0
}

// EqualsOrNewer returns true if v is equal to or newer than other.
func (v Version) EqualsOrNewer(other Version) bool {
	return v.Compare(other) >= 0
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Sort sorts versions in ascending order.
func Sort(versions []Version) {
	slices.SortStableFunc(versions, Compare)
}
