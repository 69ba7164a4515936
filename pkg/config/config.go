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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/aixops/aixfacts/pkg/defaults"
	"github.com/aixops/aixfacts/pkg/facts"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "AIXFACTS"

// Target modes.
const (
	ModeLocal = "local"
	ModeSSH   = "ssh"
)

// Config is the complete aixfacts configuration.
type Config struct {
	Target         TargetConfig   `mapstructure:"target" yaml:"target"`
	Commands       CommandsConfig `mapstructure:"commands" yaml:"commands"`
	Files          FilesConfig    `mapstructure:"files" yaml:"files"`
	Collectors     []string       `mapstructure:"collectors" yaml:"collectors"`
	CommandTimeout time.Duration  `mapstructure:"command_timeout" yaml:"command_timeout"`
	Log            LogConfig      `mapstructure:"log" yaml:"log"`
	Server         ServerConfig   `mapstructure:"server" yaml:"server"`
	Storage        StorageConfig  `mapstructure:"storage" yaml:"storage"`
	Registry       RegistryConfig `mapstructure:"registry" yaml:"registry"`
}

// TargetConfig selects the host commands run on.
type TargetConfig struct {
	Mode        string        `mapstructure:"mode" yaml:"mode"`
	Host        string        `mapstructure:"host" yaml:"host"`
	Port        int           `mapstructure:"port" yaml:"port"`
	User        string        `mapstructure:"user" yaml:"user"`
	Password    string        `mapstructure:"password" yaml:"password,omitempty"`
	KeyFile     string        `mapstructure:"key_file" yaml:"key_file"`
	KnownHosts  string        `mapstructure:"known_hosts" yaml:"known_hosts"`
	DialTimeout time.Duration `mapstructure:"dial_timeout" yaml:"dial_timeout"`
}

// CommandsConfig holds the absolute paths of the AIX commands.
type CommandsConfig struct {
	Oslevel string `mapstructure:"oslevel" yaml:"oslevel"`
	Lslpp   string `mapstructure:"lslpp" yaml:"lslpp"`
	Lsfs    string `mapstructure:"lsfs" yaml:"lsfs"`
	Mount   string `mapstructure:"mount" yaml:"mount"`
	Lsvg    string `mapstructure:"lsvg" yaml:"lsvg"`
	Lssrc   string `mapstructure:"lssrc" yaml:"lssrc"`
	Crfs    string `mapstructure:"crfs" yaml:"crfs"`
	Rmfs    string `mapstructure:"rmfs" yaml:"rmfs"`
	Lslv    string `mapstructure:"lslv" yaml:"lslv"`
}

// FilesConfig holds the paths of the files read by collectors.
type FilesConfig struct {
	Build         string `mapstructure:"build" yaml:"build"`
	BuildFallback string `mapstructure:"build_fallback" yaml:"build_fallback"`
	Niminfo       string `mapstructure:"niminfo" yaml:"niminfo"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	File       string `mapstructure:"file" yaml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// ServerConfig configures the fact service.
type ServerConfig struct {
	Address        string  `mapstructure:"address" yaml:"address"`
	Port           int     `mapstructure:"port" yaml:"port"`
	RateLimit      float64 `mapstructure:"rate_limit" yaml:"rate_limit"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst" yaml:"rate_limit_burst"`
}

// StorageConfig configures the S3-compatible output sink.
type StorageConfig struct {
	Endpoint  string `mapstructure:"endpoint" yaml:"endpoint"`
	AccessKey string `mapstructure:"access_key" yaml:"access_key"`
	SecretKey string `mapstructure:"secret_key" yaml:"secret_key,omitempty"`
	UseSSL    bool   `mapstructure:"use_ssl" yaml:"use_ssl"`
	Region    string `mapstructure:"region" yaml:"region"`
}

// RegistryConfig configures the OCI registry output sink.
type RegistryConfig struct {
	PlainHTTP   bool `mapstructure:"plain_http" yaml:"plain_http"`
	InsecureTLS bool `mapstructure:"insecure_tls" yaml:"insecure_tls"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	names := make([]string, 0, len(facts.Names))
	for _, n := range facts.Names {
		names = append(names, n.String())
	}

	return &Config{
		Target: TargetConfig{
			Mode:        ModeLocal,
			Port:        22,
			DialTimeout: defaults.SSHDialTimeout,
		},
		Commands: CommandsConfig{
			Oslevel: "/usr/bin/oslevel",
			Lslpp:   "/usr/bin/lslpp",
			Lsfs:    "/usr/sbin/lsfs",
			Mount:   "/usr/sbin/mount",
			Lsvg:    "/usr/sbin/lsvg",
			Lssrc:   "/usr/bin/lssrc",
			Crfs:    "/usr/sbin/crfs",
			Rmfs:    "/usr/sbin/rmfs",
			Lslv:    "/usr/sbin/lslv",
		},
		Files: FilesConfig{
			Build:         "/var/adm/autoinstall/etc/BUILD",
			BuildFallback: "/etc/BUILD",
			Niminfo:       "/etc/niminfo",
		},
		Collectors:     names,
		CommandTimeout: defaults.CommandTimeout,
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Server: ServerConfig{
			Address:        "0.0.0.0",
			Port:           8080,
			RateLimit:      10,
			RateLimitBurst: 20,
		},
		Storage: StorageConfig{
			UseSSL: true,
			Region: "us-east-1",
		},
	}
}

// Load reads configuration from path, or from the default locations when
// path is empty, applies environment overrides and validates the result.
// A missing file at a default location is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v, Default())

	explicit := path != ""
	if !explicit {
		path = findConfigFile()
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if explicit || !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Target.KeyFile = expandHome(cfg.Target.KeyFile)
	cfg.Target.KnownHosts = expandHome(cfg.Target.KnownHosts)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	switch c.Target.Mode {
	case ModeLocal:
	case ModeSSH:
		if c.Target.Host == "" {
			return fmt.Errorf("target.host is required in %s mode", ModeSSH)
		}
		if c.Target.User == "" {
			return fmt.Errorf("target.user is required in %s mode", ModeSSH)
		}
		if c.Target.Port <= 0 || c.Target.Port > 65535 {
			return fmt.Errorf("invalid target.port %d", c.Target.Port)
		}
	default:
		return fmt.Errorf("invalid target.mode %q, expected %s or %s", c.Target.Mode, ModeLocal, ModeSSH)
	}

	if c.CommandTimeout <= 0 {
		return fmt.Errorf("command_timeout must be positive, got %s", c.CommandTimeout)
	}

	if _, err := c.FactNames(); err != nil {
		return fmt.Errorf("invalid collectors: %w", err)
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}

	return nil
}

// FactNames returns the enabled facts in collection order.
func (c *Config) FactNames() ([]facts.Name, error) {
	return facts.ParseNames(c.Collectors)
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("target.mode", d.Target.Mode)
	v.SetDefault("target.host", d.Target.Host)
	v.SetDefault("target.port", d.Target.Port)
	v.SetDefault("target.user", d.Target.User)
	v.SetDefault("target.password", d.Target.Password)
	v.SetDefault("target.key_file", d.Target.KeyFile)
	v.SetDefault("target.known_hosts", d.Target.KnownHosts)
	v.SetDefault("target.dial_timeout", d.Target.DialTimeout)

	v.SetDefault("commands.oslevel", d.Commands.Oslevel)
	v.SetDefault("commands.lslpp", d.Commands.Lslpp)
	v.SetDefault("commands.lsfs", d.Commands.Lsfs)
	v.SetDefault("commands.mount", d.Commands.Mount)
	v.SetDefault("commands.lsvg", d.Commands.Lsvg)
	v.SetDefault("commands.lssrc", d.Commands.Lssrc)
	v.SetDefault("commands.crfs", d.Commands.Crfs)
	v.SetDefault("commands.rmfs", d.Commands.Rmfs)
	v.SetDefault("commands.lslv", d.Commands.Lslv)

	v.SetDefault("files.build", d.Files.Build)
	v.SetDefault("files.build_fallback", d.Files.BuildFallback)
	v.SetDefault("files.niminfo", d.Files.Niminfo)

	v.SetDefault("collectors", d.Collectors)
	v.SetDefault("command_timeout", d.CommandTimeout)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)
	v.SetDefault("log.compress", d.Log.Compress)

	v.SetDefault("server.address", d.Server.Address)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.rate_limit", d.Server.RateLimit)
	v.SetDefault("server.rate_limit_burst", d.Server.RateLimitBurst)

	v.SetDefault("storage.endpoint", d.Storage.Endpoint)
	v.SetDefault("storage.access_key", d.Storage.AccessKey)
	v.SetDefault("storage.secret_key", d.Storage.SecretKey)
	v.SetDefault("storage.use_ssl", d.Storage.UseSSL)
	v.SetDefault("storage.region", d.Storage.Region)

	v.SetDefault("registry.plain_http", d.Registry.PlainHTTP)
	v.SetDefault("registry.insecure_tls", d.Registry.InsecureTLS)
}

// findConfigFile returns the first existing default config file, or "".
func findConfigFile() string {
	var candidates []string
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".aixfacts.yaml"))
	}
	candidates = append(candidates, ".aixfacts.yaml")

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
