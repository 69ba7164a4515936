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

package parser

import (
	"encoding/json"
	"strings"
)

// Keys of the version breakdown, in order.
const (
	KeyOSVersion  = "OS_Ver"
	KeyTechLevel  = "TL"
	KeyServicePak = "SP"
	KeyBuildDate  = "BUILD_DATE"
	KeyOSLevel    = "oslevel_s"
)

var osLevelParts = []string{KeyOSVersion, KeyTechLevel, KeyServicePak, KeyBuildDate}

// OSLevel is the breakdown of an oslevel -s string such as
// "7200-05-03-2148".
type OSLevel map[string]string

// Version returns the OS version component, such as "72".
func (o OSLevel) Version() string { return o[KeyOSVersion] }

// TechnologyLevel returns the technology level component.
func (o OSLevel) TechnologyLevel() string { return o[KeyTechLevel] }

// ServicePack returns the service pack component.
func (o OSLevel) ServicePack() string { return o[KeyServicePak] }

// BuildDate returns the build date component, a YYWW week stamp.
func (o OSLevel) BuildDate() string { return o[KeyBuildDate] }

// String returns the original oslevel string.
func (o OSLevel) String() string { return o[KeyOSLevel] }

// MarshalJSON encodes the breakdown with its keys in component order.
func (o OSLevel) MarshalJSON() ([]byte, error) {
	r := NewRecord(len(o))
	for _, k := range osLevelParts {
		if v, ok := o[k]; ok {
			r.Set(k, v)
		}
	}
	if v, ok := o[KeyOSLevel]; ok {
		r.Set(KeyOSLevel, v)
	}
	return json.Marshal(r)
}

// DecomposeOSLevel splits an oslevel -s string on "-" into the OS version,
// technology level, service pack and build date.
//
// Each part has trailing "0" and newline characters removed, then leading
// zeros, so "6100-09-06-1543\n" becomes 61, 9, 6 and 1543. The input without
// its trailing newline is kept under oslevel_s. Missing parts are absent from
// the result and extra parts are ignored. The input is not validated.
func DecomposeOSLevel(s string) OSLevel {
	raw := strings.TrimRight(s, "\r\n")
	level := OSLevel{KeyOSLevel: raw}

	parts := strings.Split(raw, "-")
	for i, part := range parts {
		if i >= len(osLevelParts) {
			break
		}
		level[osLevelParts[i]] = trimComponent(part)
	}

	return level
}

func trimComponent(part string) string {
	part = strings.TrimRight(part, "0\r\n")
	return strings.TrimLeft(part, "0")
}
