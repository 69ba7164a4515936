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

// Package header provides the common header of aixfacts documents.
//
// Every document written by aixfacts starts with Kubernetes-style fields:
//
//	kind: AIXFacts
//	apiVersion: aixfacts.aixops.io/v1
//	metadata:
//	  id: 3f9c2a4e-8d0b-4c55-9a51-7a0f2e5b9c11
//	  source: aixhost01
//	  timestamp: "2026-03-02T10:30:00Z"
//	  version: v1.2.0
//
// Use Init to stamp a header with a fresh id and timestamp, and the
// functional options to build one by hand.
package header
