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

// Package resolver determines the Minecraft version of the running server
// and its generation in each catalog.
//
// Resolve is a pure function of a host.Host. The process-wide resolution
// is computed once, either explicitly at startup:
//
//	res, err := resolver.Init(ctx, host.Env("MC_VERSION"))
//
// or lazily by the first Runtime call, using the host set with SetHost
// (host.Offline by default). Without a host the runtime version is
// minecraft.Newest. The resolution is never recomputed, and SetHost is
// rejected once it has happened.
//
// Describe and DescribeGeneration build the JSON/YAML reports served by
// the CLI and the HTTP API.
package resolver
