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

// Package config loads aixfacts configuration from a YAML file and
// AIXFACTS_* environment variables.
//
// A configuration file is optional. When no path is given, $HOME/.aixfacts.yaml
// and ./.aixfacts.yaml are tried in that order; defaults apply to any key that
// is not set. Environment variables override the file, with dots in key names
// replaced by underscores:
//
//	AIXFACTS_TARGET_MODE=ssh
//	AIXFACTS_TARGET_HOST=aixhost01
//	AIXFACTS_COLLECTORS=oslevel,vgs
//	AIXFACTS_COMMAND_TIMEOUT=90s
//
// Example file:
//
//	target:
//	  mode: ssh
//	  host: aixhost01.example.com
//	  user: root
//	  key_file: ~/.ssh/id_ed25519
//	  known_hosts: ~/.ssh/known_hosts
//	collectors: [oslevel, lpps, vgs]
//	log:
//	  level: debug
//	  file: /var/log/aixfacts.log
//
// The returned Config is passed explicitly to the collector factory and the
// aggregator; the package holds no global state.
package config
