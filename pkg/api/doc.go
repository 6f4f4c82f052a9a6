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

// Package api wires the resolution endpoints onto pkg/server.
//
// Usage:
//
//	cfg, err := config.Load(path)
//	if err != nil {
//	    return err
//	}
//	return api.Serve(ctx, cfg)
//
// # Endpoints
//
// Application endpoints (rate limited, behind the middleware chain):
//   - GET /v1/versions                               known versions and their generations
//   - GET /v1/resolve?version=1.20.4                 generations of one version
//   - GET /v1/compare?a=1.21&b=1.21.0                version comparison
//   - GET /v1/generations[?catalog=nms]              catalog contents
//   - GET /v1/order?catalog=nms&a=v1_17_R1&b=1.20.4  generation ordering
//   - GET /v1/class?catalog=nms&generation=1.20.4&kind=obc&name=entity.CraftPlayer
//   - GET /v1/runtime                                the host's resolved version
//
// System endpoints (no rate limiting):
//   - GET /health, GET /ready, GET /metrics
//
// Ordering with a NONE generation answers 400 INVALID_ARGUMENT. Unknown
// catalogs and generation names answer 404 NOT_FOUND.
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/Nyaadanbou/minecraft-versions/pkg/api.version=1.0.0'"
package api
