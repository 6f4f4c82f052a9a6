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
	"fmt"
	"strings"
	"time"

	"github.com/Nyaadanbou/minecraft-versions/pkg/errors"
	"github.com/Nyaadanbou/minecraft-versions/pkg/version"
)

// URI schemes accepted by Parse.
const (
	SchemeOffline   = "offline"
	SchemeEnv       = "env:"
	SchemePaper     = "paper:"
	SchemeJar       = "jar:"
	SchemeConfigMap = "cm://"
	SchemePing      = "ping://"
)

// Parse builds a Host from a source URI:
//
//	offline                    no host
//	env:NAME                   environment variable
//	paper:PATH                 Paper version_history.json
//	jar:PATH                   server jar version.json
//	cm://NAMESPACE/NAME[#KEY]  Kubernetes ConfigMap key
//	ping://HOST[:PORT]         server list ping
//	1.20.4                     literal version
//
// Comma-separated URIs form a Chain. An empty uri is Offline.
func Parse(uri string) (Host, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return Offline(), nil
	}

	if strings.Contains(uri, ",") {
		parts := strings.Split(uri, ",")
		hosts := make([]Host, 0, len(parts))
		for _, part := range parts {
			h, err := parseOne(strings.TrimSpace(part))
			if err != nil {
				return nil, err
			}
			hosts = append(hosts, h)
		}
		return Chain(hosts...), nil
	}

	return parseOne(uri)
}

func parseOne(uri string) (Host, error) {
	switch {
	case uri == "" || strings.EqualFold(uri, SchemeOffline):
		return Offline(), nil

	case strings.HasPrefix(uri, SchemeEnv):
		name := strings.TrimPrefix(uri, SchemeEnv)
		if name == "" {
			return nil, invalidSource(uri, "missing variable name")
		}
		return Env(name), nil

	case strings.HasPrefix(uri, SchemePaper):
		path := strings.TrimPrefix(uri, SchemePaper)
		if path == "" {
			return nil, invalidSource(uri, "missing path")
		}
		return PaperHistory(path), nil

	case strings.HasPrefix(uri, SchemeJar):
		path := strings.TrimPrefix(uri, SchemeJar)
		if path == "" {
			return nil, invalidSource(uri, "missing path")
		}
		return ServerJar(path), nil

	case strings.HasPrefix(uri, SchemeConfigMap):
		namespace, name, key, err := parseConfigMapURI(uri)
		if err != nil {
			return nil, err
		}
		return ConfigMap(nil, namespace, name, key), nil

	case strings.HasPrefix(uri, SchemePing):
		addr := strings.TrimPrefix(uri, SchemePing)
		if _, _, err := splitAddress(addr); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest, fmt.Sprintf("invalid host source %q", uri), err)
		}
		return Ping(addr, time.Duration(0)), nil
	}

	if _, err := version.Parse(uri); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown host source %q: expected offline, env:, paper:, jar:, cm://, ping:// or a version", uri), err)
	}
	return Static(uri), nil
}

// parseConfigMapURI splits cm://namespace/name[#key].
func parseConfigMapURI(uri string) (namespace, name, key string, err error) {
	path := strings.TrimPrefix(uri, SchemeConfigMap)
	if i := strings.IndexByte(path, '#'); i >= 0 {
		key = strings.TrimSpace(path[i+1:])
		path = path[:i]
	}

	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 {
		return "", "", "", invalidSource(uri, "expected "+SchemeConfigMap+"namespace/name")
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])
	if namespace == "" {
		return "", "", "", invalidSource(uri, "namespace cannot be empty")
	}
	if name == "" {
		return "", "", "", invalidSource(uri, "name cannot be empty")
	}
	return namespace, name, key, nil
}

func invalidSource(uri, reason string) error {
	return errors.NewWithContext(errors.ErrCodeInvalidRequest,
		fmt.Sprintf("invalid host source %q: %s", uri, reason),
		map[string]any{"source": uri})
}
