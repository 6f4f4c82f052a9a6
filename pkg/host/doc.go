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

// Package host provides the sources a runtime resolution can ask for the
// version string of the running Minecraft server.
//
// A Host either reports a string or fails. ErrUnavailable (wrapped or
// not) means there is no server to ask; every other error is a real
// failure and is surfaced by the resolver.
//
// Sources:
//
//   - Offline: never available
//   - Static: a fixed string
//   - Env: an environment variable
//   - PaperHistory: Paper's version_history.json
//   - ServerJar: version.json inside the server jar
//   - ConfigMap: a key of a Kubernetes ConfigMap
//   - Ping: the server list ping of a running server
//   - Chain: the first source that is available
//
// Parse builds any of these from a URI, e.g.
//
//	h, err := host.Parse("env:MC_VERSION,paper:/srv/paper/version_history.json")
package host
