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

package aggregator

import (
	"github.com/aixops/aixfacts/pkg/facts"
	"github.com/aixops/aixfacts/pkg/header"
)

const (
	// APIDomain is the API group of aggregated fact documents.
	APIDomain = "aixfacts.aixops.io"

	// APIVersion is the version of the fact document schema.
	APIVersion = "v1"

	// FullAPIVersion is the apiVersion written into every Snapshot.
	FullAPIVersion = APIDomain + "/" + APIVersion
)

// Snapshot is the aggregated set of facts collected from one AIX host.
type Snapshot struct {
	header.Header `json:",inline" yaml:",inline"`

	// Facts maps each collected fact name to its structured value.
	Facts *facts.Set `json:"facts" yaml:"facts"`
}

// NewSnapshot returns an empty Snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Facts: facts.NewSet(),
	}
}
