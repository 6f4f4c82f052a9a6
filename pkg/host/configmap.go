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
	"fmt"
	"log/slog"
	"strings"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/Nyaadanbou/minecraft-versions/pkg/defaults"
	"github.com/Nyaadanbou/minecraft-versions/pkg/k8s/client"
)

// DefaultConfigMapKey is the data key read when a ConfigMap URI has no
// #key fragment.
const DefaultConfigMapKey = "minecraft-version"

type configMapSource struct {
	client    client.Interface
	namespace string
	name      string
	key       string
}

func (c *configMapSource) String() string {
	return fmt.Sprintf("cm://%s/%s#%s", c.namespace, c.name, c.key)
}

func (c *configMapSource) ReportedVersion(ctx context.Context) (string, error) {
	cs := c.client
	if cs == nil {
		var err error
		cs, _, err = client.GetKubeClient()
		if err != nil {
			return "", fmt.Errorf("%w: failed to get kubernetes client: %w", ErrUnavailable, err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.ConfigMapReadTimeout)
	defer cancel()

	cm, err := cs.CoreV1().ConfigMaps(c.namespace).Get(ctx, c.name, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return "", fmt.Errorf("failed to get ConfigMap %s/%s: %w", c.namespace, c.name, err)
	}

	v := strings.TrimSpace(cm.Data[c.key])
	if v == "" {
		return "", fmt.Errorf("%w: ConfigMap %s/%s has no %q key", ErrUnavailable, c.namespace, c.name, c.key)
	}

	slog.Debug("read version from ConfigMap", "namespace", c.namespace, "name", c.name, "key", c.key)
	return extractOrRaw(v), nil
}

// ConfigMap returns a Host that reads the version from data[key] of the
// ConfigMap namespace/name. A nil cs uses the shared client from
// pkg/k8s/client on first query. A missing ConfigMap or key, or no
// reachable cluster, is unavailable.
func ConfigMap(cs client.Interface, namespace, name, key string) Host {
	if key == "" {
		key = DefaultConfigMapKey
	}
	return &configMapSource{client: cs, namespace: namespace, name: name, key: key}
}
