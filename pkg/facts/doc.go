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

// Package facts defines the fact names collected from an AIX host, the
// failure policy each collector declares and the write-once Set that holds
// the results of one aggregation.
//
// Facts are collected in the fixed order given by Names:
//
//	oslevel, build, lpps, filesystems, mounts, vgs, lssrc, niminfo
//
// A Set is built fresh for every aggregation. Each name can be stored once;
// a second Put for the same name is rejected.
package facts
