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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aixops/aixfacts/pkg/facts"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aixfacts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	names, err := cfg.FactNames()
	require.NoError(t, err)
	assert.Equal(t, facts.Names, names)
	assert.Equal(t, "/usr/sbin/lsvg", cfg.Commands.Lsvg)
	assert.Equal(t, "/etc/niminfo", cfg.Files.Niminfo)
	assert.Equal(t, 2*time.Minute, cfg.CommandTimeout)
}

func TestLoad_File(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, `
target:
  mode: ssh
  host: aixhost01
  user: root
collectors: [vgs, oslevel]
command_timeout: 30s
commands:
  lsvg: /opt/bin/lsvg
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ModeSSH, cfg.Target.Mode)
	assert.Equal(t, "aixhost01", cfg.Target.Host)
	assert.Equal(t, 22, cfg.Target.Port)
	assert.Equal(t, 30*time.Second, cfg.CommandTimeout)
	assert.Equal(t, "/opt/bin/lsvg", cfg.Commands.Lsvg)
	assert.Equal(t, "/usr/bin/lslpp", cfg.Commands.Lslpp)
	assert.Equal(t, "debug", cfg.Log.Level)

	names, err := cfg.FactNames()
	require.NoError(t, err)
	assert.Equal(t, []facts.Name{facts.NameOSLevel, facts.NameVGs}, names)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AIXFACTS_TARGET_HOST", "from-env")
	t.Setenv("AIXFACTS_COLLECTORS", "lssrc,niminfo")
	t.Setenv("AIXFACTS_COMMAND_TIMEOUT", "90s")

	path := writeConfig(t, `
target:
  mode: ssh
  host: from-file
  user: root
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Target.Host)
	assert.Equal(t, 90*time.Second, cfg.CommandTimeout)
	assert.Equal(t, []string{"lssrc", "niminfo"}, cfg.Collectors)
}

func TestLoad_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ModeLocal, cfg.Target.Mode)
}

func TestLoad_HomeFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(home, ".aixfacts.yaml"),
		[]byte("collectors: [build]\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"build"}, cfg.Collectors)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeConfig(t, `
target:
  mode: ssh
  host: h
  user: u
  key_file: ~/.ssh/id_ed25519
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".ssh/id_ed25519"), cfg.Target.KeyFile)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "default", mutate: func(*Config) {}},
		{name: "bad mode", mutate: func(c *Config) { c.Target.Mode = "telnet" }, wantErr: true},
		{name: "ssh without host", mutate: func(c *Config) { c.Target.Mode = ModeSSH; c.Target.User = "root" }, wantErr: true},
		{name: "ssh without user", mutate: func(c *Config) { c.Target.Mode = ModeSSH; c.Target.Host = "h" }, wantErr: true},
		{name: "ssh complete", mutate: func(c *Config) { c.Target.Mode = ModeSSH; c.Target.Host = "h"; c.Target.User = "u" }},
		{name: "zero timeout", mutate: func(c *Config) { c.CommandTimeout = 0 }, wantErr: true},
		{name: "unknown collector", mutate: func(c *Config) { c.Collectors = []string{"gpu"} }, wantErr: true},
		{name: "bad server port", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
