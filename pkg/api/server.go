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

package api

import (
	"context"
	"log/slog"

	"github.com/Nyaadanbou/minecraft-versions/pkg/config"
	"github.com/Nyaadanbou/minecraft-versions/pkg/logging"
	"github.com/Nyaadanbou/minecraft-versions/pkg/resolver"
	"github.com/Nyaadanbou/minecraft-versions/pkg/server"
)

const (
	name           = "mcverd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/Nyaadanbou/minecraft-versions/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve resolves the runtime version from the configured host, then serves
// the resolution API until ctx is cancelled or the process is signalled.
// A failed runtime resolution is logged and reported by /v1/runtime; the
// catalog endpoints keep working.
func Serve(ctx context.Context, cfg *config.Config) error {
	if cfg == nil {
		cfg = config.Default()
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	h, err := cfg.HostSource()
	if err != nil {
		return err
	}

	if res, err := resolver.Init(ctx, h); err != nil {
		slog.Error("runtime resolution failed", "host", cfg.Host, "error", err)
	} else {
		recordRuntime(res)
	}

	s := server.New(
		server.WithConfig(cfg.ServerConfig(name, version)),
		server.WithHandler(NewHandler().Routes()),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
