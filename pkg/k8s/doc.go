// Copyright (c) 2026, The aixfacts Authors.  All rights reserved.
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

// Package k8s groups the Kubernetes integration of aixfacts.
//
// # Sub-packages
//
// client: Shared Kubernetes client used by the cm:// output sink
//
//	clientset, restConfig, err := client.GetKubeClient()
//	if err != nil {
//	    return err
//	}
//
// The client authenticates in-cluster through the service account when one
// is mounted and falls back to the kubeconfig file otherwise.
package k8s
