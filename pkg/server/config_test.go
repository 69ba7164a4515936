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

package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/aixops/aixfacts/pkg/config"
	"github.com/aixops/aixfacts/pkg/defaults"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "")

	cfg := NewConfig()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, rate.Limit(10), cfg.RateLimit)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.Equal(t, defaults.FactsHandlerTimeout, cfg.FactsTimeout)
	assert.Equal(t, defaults.ServerReadHeaderTimeout, cfg.ReadHeaderTimeout)
	assert.Equal(t, defaults.ServerShutdownTimeout, cfg.ShutdownTimeout)
}

func TestNewConfig_Env(t *testing.T) {
	tests := []struct {
		name         string
		port         string
		shutdown     string
		wantPort     int
		wantShutdown time.Duration
	}{
		{"overrides", "9090", "45", 9090, 45 * time.Second},
		{"invalid port ignored", "abc", "", 8080, defaults.ServerShutdownTimeout},
		{"non-positive shutdown ignored", "", "0", 8080, defaults.ServerShutdownTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.port)
			t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", tt.shutdown)

			cfg := NewConfig()
			assert.Equal(t, tt.wantPort, cfg.Port)
			assert.Equal(t, tt.wantShutdown, cfg.ShutdownTimeout)
		})
	}
}

func TestWithServerConfig(t *testing.T) {
	t.Setenv("PORT", "")

	s := New(WithServerConfig(config.ServerConfig{
		Address:   "127.0.0.1",
		Port:      9443,
		RateLimit: 2.5,
	}))

	assert.Equal(t, "127.0.0.1:9443", s.Addr())
	assert.Equal(t, rate.Limit(2.5), s.config.RateLimit)
	assert.Equal(t, 20, s.config.RateLimitBurst)
}
