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

// Package index builds read-only lookup maps from ordered collections.
//
// Unlike a plain loop over map assignments, the builders here refuse to let a
// later item silently replace an earlier one under the same key: a key
// claimed by two distinct items is reported as a *DuplicateKeyError.
package index

import (
	"errors"
	"fmt"
)

// ErrDuplicateKey is wrapped by every *DuplicateKeyError.
var ErrDuplicateKey = errors.New("index: key claimed by more than one item")

// DuplicateKeyError describes a key claimed by two distinct items.
// First is the item that claimed Key earlier in iteration order.
type DuplicateKeyError struct {
	Key    any
	First  any
	Second any
}

// Error implements the error interface.
func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("index: key %v claimed by both %v and %v", e.Key, e.First, e.Second)
}

// Unwrap returns ErrDuplicateKey.
func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

// Build maps each item to itself under the key extracted by keyFn.
func Build[K comparable, V comparable](items []V, keyFn func(V) K) (map[K]V, error) {
	return BuildMultiple(items, func(item V) []K {
		return []K{keyFn(item)}
	})
}

// BuildMultiple maps each item to itself under every key extracted by keysFn.
// Items are visited in order. An item repeating one of its own keys is
// harmless; a key claimed by a second, different item fails the whole build.
func BuildMultiple[K comparable, V comparable](items []V, keysFn func(V) []K) (map[K]V, error) {
	m := make(map[K]V, len(items))
	for _, item := range items {
		for _, key := range keysFn(item) {
			if prev, ok := m[key]; ok {
				if prev == item {
					continue
				}
				return nil, &DuplicateKeyError{Key: key, First: prev, Second: item}
			}
			m[key] = item
		}
	}
	return m, nil
}
