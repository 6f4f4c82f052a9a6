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
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/Nyaadanbou/minecraft-versions/pkg/serializer"
)

// PaperHistoryFile is the file Paper writes into the server directory.
const PaperHistoryFile = "version_history.json"

// paperHistory mirrors Paper's version_history.json.
type paperHistory struct {
	CurrentVersion string `json:"currentVersion"`
	OldVersion     string `json:"oldVersion,omitempty"`
}

type paperSource string

func (p paperSource) String() string { return "paper:" + string(p) }

func (p paperSource) ReportedVersion(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r, err := serializer.NewFileReader(serializer.FormatJSON, string(p))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return "", fmt.Errorf("failed to open paper version history: %w", err)
	}
	defer func() {
		if closeErr := r.Close(); closeErr != nil {
			slog.Warn("failed to close paper version history", "path", string(p), "error", closeErr)
		}
	}()

	var h paperHistory
	if err := r.Deserialize(&h); err != nil {
		return "", fmt.Errorf("failed to read paper version history %s: %w", string(p), err)
	}

	current := strings.TrimSpace(h.CurrentVersion)
	if current == "" {
		return "", fmt.Errorf("%w: %s has no currentVersion", ErrUnavailable, string(p))
	}

	slog.Debug("read paper version history", "path", string(p), "currentVersion", current)
	return extractOrRaw(current), nil
}

// PaperHistory returns a Host backed by Paper's version_history.json at
// path. The "(MC: x.y.z)" part of currentVersion is reported. A missing
// file is unavailable.
func PaperHistory(path string) Host {
	return paperSource(path)
}
