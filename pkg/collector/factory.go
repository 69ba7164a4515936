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

package collector

import (
	"fmt"

	"github.com/aixops/aixfacts/pkg/collector/aix"
	"github.com/aixops/aixfacts/pkg/config"
	"github.com/aixops/aixfacts/pkg/executor"
	"github.com/aixops/aixfacts/pkg/facts"
)

// Option configures a DefaultFactory.
type Option func(*DefaultFactory)

// WithExecutor sets the executor collectors run commands with.
func WithExecutor(exec executor.Executor) Option {
	return func(f *DefaultFactory) {
		f.Executor = exec
	}
}

// DefaultFactory creates the AIX collectors from configuration.
type DefaultFactory struct {
	Config   *config.Config
	Executor executor.Executor
}

// NewDefaultFactory creates a factory for cfg. Without WithExecutor,
// commands run on the local host.
func NewDefaultFactory(cfg *config.Config, opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		Config: cfg,
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.Executor == nil {
		f.Executor = executor.NewLocal()
	}
	return f
}

// Create returns the collector of the named fact.
func (f *DefaultFactory) Create(name facts.Name) (Collector, error) {
	cmds := f.Config.Commands
	files := f.Config.Files
	runner := aix.Runner{
		Exec:    f.Executor,
		Timeout: f.Config.CommandTimeout,
	}

	switch name {
	case facts.NameOSLevel:
		return &aix.OSLevelCollector{Runner: runner, Command: cmds.Oslevel}, nil
	case facts.NameBuild:
		return &aix.BuildCollector{Runner: runner, Path: files.Build, FallbackPath: files.BuildFallback}, nil
	case facts.NameLPPs:
		return &aix.LPPCollector{Runner: runner, Command: cmds.Lslpp}, nil
	case facts.NameFilesystems:
		return &aix.FilesystemCollector{Runner: runner, Command: cmds.Lsfs}, nil
	case facts.NameMounts:
		return &aix.MountCollector{Runner: runner, Command: cmds.Mount}, nil
	case facts.NameVGs:
		return &aix.VGCollector{Runner: runner, Command: cmds.Lsvg}, nil
	case facts.NameLssrc:
		return &aix.LssrcCollector{Runner: runner, Command: cmds.Lssrc}, nil
	case facts.NameNiminfo:
		return &aix.NiminfoCollector{Runner: runner, Path: files.Niminfo}, nil
	default:
		return nil, fmt.Errorf("unknown fact %q", name)
	}
}

// CreateAll returns the collectors of names in order.
func CreateAll(f Factory, names []facts.Name) ([]Collector, error) {
	out := make([]Collector, 0, len(names))
	for _, n := range names {
		c, err := f.Create(n)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
