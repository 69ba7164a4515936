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
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aixops/aixfacts/pkg/errors"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code errors.ErrorCode
		want int
	}{
		{errors.ErrCodeInvalidRequest, http.StatusBadRequest},
		{errors.ErrCodeUnauthorized, http.StatusUnauthorized},
		{errors.ErrCodeNotFound, http.StatusNotFound},
		{errors.ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{errors.ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{errors.ErrCodeUnsupported, http.StatusNotImplemented},
		{errors.ErrCodeCollectorFailed, http.StatusBadGateway},
		{errors.ErrCodeCommandFailed, http.StatusBadGateway},
		{errors.ErrCodeParseFailed, http.StatusBadGateway},
		{errors.ErrCodeUnavailable, http.StatusServiceUnavailable},
		{errors.ErrCodeTimeout, http.StatusGatewayTimeout},
		{errors.ErrCodeInternal, http.StatusInternalServerError},
		{errors.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.code))
		})
	}
}

func TestWriteError_UsesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/facts", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, "req-1"))
	w := httptest.NewRecorder()

	WriteError(w, req, http.StatusBadRequest, errors.ErrCodeInvalidRequest, "bad", false,
		map[string]any{"field": "fact"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "req-1", resp.RequestID)
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
	assert.Equal(t, "bad", resp.Message)
	assert.Equal(t, "fact", resp.Details["field"])
	assert.False(t, resp.Timestamp.IsZero())
}

func TestWriteError_GeneratesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	WriteError(w, req, http.StatusInternalServerError, errors.ErrCodeInternal, "boom", true, nil)

	resp := decodeError(t, w)
	assert.NotEmpty(t, resp.RequestID)
	assert.True(t, resp.Retryable)
}

func TestWriteErrorFromErr(t *testing.T) {
	cause := fmt.Errorf("exit status 2")
	err := fmt.Errorf("request: %w",
		errors.WrapWithContext(errors.ErrCodeCommandFailed, "lsfs failed", cause, map[string]any{"command": "lsfs"}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	WriteErrorFromErr(w, req, err)

	require.Equal(t, http.StatusBadGateway, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "COMMAND_FAILED", resp.Code)
	assert.Equal(t, "lsfs failed: exit status 2", resp.Message)
	assert.Equal(t, "lsfs", resp.Details["command"])
}
