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

package filesystem

import (
	"fmt"
	"path"
	"strings"

	"github.com/aixops/aixfacts/pkg/errors"
	"github.com/aixops/aixfacts/pkg/header"
)

// State is the desired state of a filesystem.
type State string

const (
	StatePresent State = "present"
	StateAbsent  State = "absent"
)

// DefaultFSType is the filesystem type created when none is requested.
const DefaultFSType = "jfs2"

// SupportedFSTypes lists the filesystem types Ensure can create.
var SupportedFSTypes = []string{"jfs", "jfs2"}

// ParseState converts s into a State. An empty string selects StatePresent.
func ParseState(s string) (State, error) {
	switch State(strings.ToLower(strings.TrimSpace(s))) {
	case "", StatePresent:
		return StatePresent, nil
	case StateAbsent:
		return StateAbsent, nil
	default:
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid state %q: must be %s or %s", s, StatePresent, StateAbsent),
			map[string]any{"state": s})
	}
}

// Request describes the desired filesystem.
type Request struct {
	// MountPoint identifies the filesystem.
	MountPoint string
	// LogicalVolume hosts the filesystem. Required when State is present.
	LogicalVolume string
	// FSType is the type to create. Defaults to DefaultFSType.
	FSType string
	// AtRestart mounts the filesystem at system restart.
	AtRestart bool
	// State is the desired state. Defaults to StatePresent.
	State State
	// DryRun reports the change without making it.
	DryRun bool
}

// Validate checks the request and fills in defaults.
func (r *Request) Validate() error {
	if r.MountPoint == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "mount point is required")
	}
	if !path.IsAbs(r.MountPoint) {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest, "mount point must be an absolute path",
			map[string]any{"mount_point": r.MountPoint})
	}
	if r.State == "" {
		r.State = StatePresent
	}
	if r.State != StatePresent && r.State != StateAbsent {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest, "invalid state",
			map[string]any{"state": string(r.State)})
	}
	if r.State == StatePresent && r.LogicalVolume == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "logical volume is required to create a filesystem")
	}
	if r.FSType == "" {
		r.FSType = DefaultFSType
	}
	return nil
}

// Result reports the outcome of Ensure.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	// MountPoint is the filesystem the result refers to.
	MountPoint string `json:"mountPoint" yaml:"mountPoint"`
	// State is the requested state.
	State State `json:"state" yaml:"state"`
	// Changed reports whether the host was (or, in dry-run, would be) modified.
	Changed bool `json:"changed" yaml:"changed"`
	// DryRun reports whether the mutation was skipped.
	DryRun bool `json:"dryRun,omitempty" yaml:"dryRun,omitempty"`
	// Message describes the outcome.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	// Command is the mutating command that ran, or would run in dry-run.
	Command string `json:"command,omitempty" yaml:"command,omitempty"`
}
