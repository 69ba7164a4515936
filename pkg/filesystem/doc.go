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

// Package filesystem creates and removes AIX journaled filesystems
// idempotently, keyed by mount point.
//
// Ensure compares the desired state with what lsfs reports:
//
//	present + exists   no-op
//	absent  + missing  no-op
//	absent  + exists   rmfs -r <mount-point>
//	present + missing  lslv <lv>, then crfs -v <type> -A yes|no -d <lv> -m <mount-point> -a logname=INLINE
//
// Only jfs and jfs2 can be created; other types leave the host unchanged
// and report a warning. With DryRun set, Ensure reports the change it
// would make without running the mutating command.
//
//	ctrl := filesystem.NewController(cfg, exec)
//	res, err := ctrl.Ensure(ctx, filesystem.Request{
//	    MountPoint:    "/application",
//	    LogicalVolume: "lvol1",
//	    State:         filesystem.StatePresent,
//	})
package filesystem
