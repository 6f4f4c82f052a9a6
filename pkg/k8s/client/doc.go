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

// Package client provides the shared Kubernetes client used by the
// ConfigMap host source.
//
// The client is built once with sync.Once and reused:
//
//	cs, _, err := client.GetKubeClient()
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//	cm, err := cs.CoreV1().ConfigMaps("minecraft").Get(ctx, "server", metav1.GetOptions{})
//
// Configuration is discovered from KUBECONFIG, then ~/.kube/config, then
// the in-cluster service account. BuildKubeClient bypasses the cache for
// an explicit kubeconfig path.
//
// Tests should pass a k8s.io/client-go/kubernetes/fake clientset to the
// host source instead of calling GetKubeClient.
package client
