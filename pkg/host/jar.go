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

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/Nyaadanbou/minecraft-versions/pkg/serializer"
)

// jarVersionEntry is the metadata file vanilla and Paper server jars carry.
const jarVersionEntry = "version.json"

// jarVersion is the subset of version.json that names the game version.
type jarVersion struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type jarSource string

func (j jarSource) String() string { return "jar:" + string(j) }

func (j jarSource) ReportedVersion(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	zr, err := zip.OpenReader(string(j))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return "", fmt.Errorf("failed to open server jar %s: %w", string(j), err)
	}
	defer func() {
		if closeErr := zr.Close(); closeErr != nil {
			slog.Warn("failed to close server jar", "path", string(j), "error", closeErr)
		}
	}()

	f, err := zr.Open(jarVersionEntry)
	if err != nil {
		return "", fmt.Errorf("server jar %s has no %s: %w", string(j), jarVersionEntry, err)
	}

	r, err := serializer.NewReader(serializer.FormatJSON, f)
	if err != nil {
		_ = f.Close()
		return "", err
	}
	defer r.Close()

	var v jarVersion
	if err := r.Deserialize(&v); err != nil {
		return "", fmt.Errorf("failed to read %s from %s: %w", jarVersionEntry, string(j), err)
	}

	reported := strings.TrimSpace(v.ID)
	if reported == "" {
		reported = strings.TrimSpace(v.Name)
	}
	if reported == "" {
		return "", fmt.Errorf("%s in %s names no version", jarVersionEntry, string(j))
	}
	return reported, nil
}

// ServerJar returns a Host that reads version.json from the server jar at
// path, preferring "id" over "name". A missing jar is unavailable.
func ServerJar(path string) Host {
	return jarSource(path)
}
