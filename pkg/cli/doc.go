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

// Package cli implements the mcver command-line tool.
//
// # Commands
//
//	mcver versions                      list known versions and their generations
//	mcver parse VERSION                 parse 1.20.4 or v1_20_4
//	mcver compare A B                   numerically compare two versions
//	mcver resolve VERSION               generation of VERSION in each catalog
//	mcver generations [--catalog C]     list catalog generations
//	mcver order --catalog C A B         order two generations
//	mcver class -g GEN [--obc] NAME     fully qualified NMS or OBC class name
//	mcver runtime [--host URI]          resolve the running server's version
//	mcver serve [--host URI] [--port N] serve the HTTP API
//
// # Output
//
// Commands that produce documents accept --output (-o) and --format (-t).
// The output may be a file path, a ConfigMap URI (cm://namespace/name) or
// stdout. Formats are yaml (default), json and table.
//
// # Configuration
//
// Global flags --config (MCVER_CONFIG) and --log-level override the config
// file, which in turn overrides the environment defaults: MCVER_HOST,
// LOG_LEVEL, PORT and SHUTDOWN_TIMEOUT_SECONDS.
//
// # Exit Codes
//
//	0  Success
//	1  Invalid arguments or command failure
package cli
