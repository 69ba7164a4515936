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

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aixops/aixfacts/pkg/config"
	"github.com/aixops/aixfacts/pkg/executor"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, "aixfactsd", name)
	assert.NotEmpty(t, version)
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, date)
}

func TestNewServer_Facts(t *testing.T) {
	fake := executor.NewFake().SetOutput("7100-05-06-2028\n", "/usr/bin/oslevel", "-s")

	cfg := config.Default()
	s := NewServer(cfg, fake)
	s.SetReady(true)

	req := httptest.NewRequest(http.MethodGet, "/v1/facts?fact=oslevel", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Kind  string                     `json:"kind"`
		Facts map[string]json.RawMessage `json:"facts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "AIXFacts", body.Kind)
	require.Contains(t, body.Facts, "oslevel")
	assert.Len(t, body.Facts, 1)
}

func TestNewServer_CollectorFailure(t *testing.T) {
	fake := executor.NewFake().SetCommand(executor.FakeResponse{ExitCode: 1, Stderr: "lssrc: denied"},
		"/usr/bin/lssrc", "-a")

	s := NewServer(config.Default(), fake)

	req := httptest.NewRequest(http.MethodGet, "/v1/facts/lssrc", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "COLLECTOR_FAILED")
}
