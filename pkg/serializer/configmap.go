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

package serializer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"

	"github.com/Nyaadanbou/minecraft-versions/pkg/defaults"
	"github.com/Nyaadanbou/minecraft-versions/pkg/k8s/client"
)

const (
	// ConfigMapURIScheme prefixes ConfigMap destinations: cm://namespace/name.
	ConfigMapURIScheme = "cm://"

	// FieldManager owns the fields written by server-side apply.
	FieldManager = "mcver"

	configMapDataPrefix = "report"
)

// ConfigMapDataProvider is implemented by values that contribute extra
// keys to the ConfigMap they are written to.
type ConfigMapDataProvider interface {
	ConfigMapData() map[string]string
}

// ConfigMapWriter writes serialized data to a Kubernetes ConfigMap with
// server-side apply, creating it if needed.
type ConfigMapWriter struct {
	client    client.Interface
	namespace string
	name      string
	format    Format
	now       func() time.Time
}

// NewConfigMapWriter creates a writer for namespace/name. A nil cs uses
// the shared client from pkg/k8s/client.
func NewConfigMapWriter(cs client.Interface, namespace, name string, format Format) *ConfigMapWriter {
	return &ConfigMapWriter{
		client:    cs,
		namespace: namespace,
		name:      name,
		format:    knownOrJSON(format),
		now:       time.Now,
	}
}

// Serialize applies a ConfigMap holding:
//   - report.{json|yaml|txt}: the serialized data
//   - format: the format used
//   - timestamp: RFC 3339 time of the write
//   - any keys returned by data's ConfigMapData method
func (w *ConfigMapWriter) Serialize(ctx context.Context, data any) error {
	ctx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	cs := w.client
	if cs == nil {
		var err error
		cs, _, err = client.GetKubeClient()
		if err != nil {
			return fmt.Errorf("failed to get kubernetes client: %w", err)
		}
	}

	content, err := Encode(w.format, data)
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	cmData := map[string]string{
		configMapDataPrefix + "." + w.format.Extension(): string(content),
		"format":    string(w.format),
		"timestamp": w.now().UTC().Format(time.RFC3339),
	}
	if p, ok := data.(ConfigMapDataProvider); ok {
		for k, v := range p.ConfigMapData() {
			cmData[k] = v
		}
	}

	cm := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/name":       "mcver",
			"app.kubernetes.io/managed-by": FieldManager,
		}).
		WithData(cmData)

	slog.Info("applying ConfigMap", "namespace", w.namespace, "name", w.name, "format", w.format)

	_, err = cs.CoreV1().ConfigMaps(w.namespace).Apply(ctx, cm, metav1.ApplyOptions{
		FieldManager: FieldManager,
		Force:        true,
	})
	if err != nil {
		return fmt.Errorf("failed to apply ConfigMap %s/%s: %w", w.namespace, w.name, err)
	}
	return nil
}

// Close is a no-op; it satisfies Closer.
func (w *ConfigMapWriter) Close() error {
	return nil
}

// ParseConfigMapURI splits cm://namespace/name.
func ParseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, ConfigMapURIScheme), "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])
	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}
	return namespace, name, nil
}
