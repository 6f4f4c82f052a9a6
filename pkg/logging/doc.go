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

// Package logging configures log/slog for mcver binaries.
//
// All output is JSON on stderr and carries the module and version:
//
//	{"time":"2026-01-15T10:30:00Z","level":"INFO","msg":"resolved runtime version","module":"mcver","version":"v0.1.0","minecraft":"1.20.4"}
//
// Debug loggers also record the source location.
//
// # Log Levels
//
// Level names are case-insensitive: debug, info (default), warn or
// warning, error. The LOG_LEVEL environment variable sets the level for
// SetDefaultStructuredLogger; the CLI --log-level flag overrides it.
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("mcverd", version)
//	    slog.Info("starting", "port", 8080)
//	}
//
// Other packages log through the slog default and never configure
// handlers themselves.
package logging
