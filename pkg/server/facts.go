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
	"net/http"
	"strings"

	"github.com/aixops/aixfacts/pkg/aggregator"
	"github.com/aixops/aixfacts/pkg/errors"
	"github.com/aixops/aixfacts/pkg/facts"
	"github.com/aixops/aixfacts/pkg/header"
	"github.com/aixops/aixfacts/pkg/serializer"
)

// AggregateFunc collects the named facts and returns the snapshot.
type AggregateFunc func(ctx context.Context, names []facts.Name) (*aggregator.Snapshot, error)

// FactResponse is the body of GET /v1/facts/{name}.
type FactResponse struct {
	Fact      string `json:"fact" yaml:"fact"`
	Source    string `json:"source,omitempty" yaml:"source,omitempty"`
	Timestamp string `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Value     any    `json:"value" yaml:"value"`
}

// handleFacts handles GET /v1/facts[?fact=a,b][&format=json|yaml|table]
func (s *Server) handleFacts(w http.ResponseWriter, r *http.Request) {
	format, err := responseFormat(r)
	if err != nil {
		WriteErrorFromErr(w, r, err)
		return
	}

	names, err := facts.ParseNames(queryList(r, "fact"))
	if err != nil {
		WriteErrorFromErr(w, r, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid fact selection", err))
		return
	}

	snap, err := s.aggregate(r.Context(), names)
	if err != nil {
		WriteErrorFromErr(w, r, err)
		return
	}

	serializer.Respond(w, http.StatusOK, format, snap)
}

// handleFact handles GET /v1/facts/{name}
func (s *Server) handleFact(w http.ResponseWriter, r *http.Request) {
	format, err := responseFormat(r)
	if err != nil {
		WriteErrorFromErr(w, r, err)
		return
	}

	raw := r.PathValue("name")
	name, ok := facts.ParseName(raw)
	if !ok {
		WriteErrorFromErr(w, r, errors.NewWithContext(errors.ErrCodeNotFound,
			"unknown fact", map[string]any{"fact": raw}))
		return
	}

	snap, err := s.aggregate(r.Context(), []facts.Name{name})
	if err != nil {
		WriteErrorFromErr(w, r, err)
		return
	}

	value, ok := snap.Facts.Get(name)
	if !ok {
		WriteErrorFromErr(w, r, errors.NewWithContext(errors.ErrCodeNotFound,
			"fact was not collected", map[string]any{"fact": raw}))
		return
	}

	serializer.Respond(w, http.StatusOK, format, FactResponse{
		Fact:      name.String(),
		Source:    snap.Metadata[header.MetadataSource],
		Timestamp: snap.Metadata[header.MetadataTimestamp],
		Value:     value,
	})
}

// aggregate runs the configured AggregateFunc. Concurrent requests for
// the same fact selection share one aggregation, which is detached from
// any single request so that one client going away does not fail the rest.
func (s *Server) aggregate(ctx context.Context, names []facts.Name) (*aggregator.Snapshot, error) {
	if s.config.Aggregate == nil {
		return nil, errors.New(errors.ErrCodeUnavailable, "fact aggregation is not configured")
	}

	key := joinNames(names)
	ch := s.group.DoChan(key, func() (any, error) {
		aggCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.config.FactsTimeout)
		defer cancel()
		return s.config.Aggregate(aggCtx, names)
	})

	select {
	case <-ctx.Done():
		return nil, errors.Wrap(errors.ErrCodeTimeout, "request canceled while collecting facts", ctx.Err())
	case res := <-ch:
		if res.Shared {
			factRequestsShared.Inc()
		}
		if res.Err != nil {
			return nil, res.Err
		}
		snap, ok := res.Val.(*aggregator.Snapshot)
		if !ok || snap == nil {
			return nil, errors.New(errors.ErrCodeInternal, "aggregation returned no snapshot")
		}
		return snap, nil
	}
}

func joinNames(names []facts.Name) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n.String()
	}
	return strings.Join(parts, ",")
}

// queryList returns the comma separated values of a repeated query parameter.
func queryList(r *http.Request, key string) []string {
	var out []string
	for _, v := range r.URL.Query()[key] {
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

// responseFormat reads the format query parameter, defaulting to JSON.
func responseFormat(r *http.Request) (serializer.Format, error) {
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if raw == "" {
		return serializer.FormatJSON, nil
	}
	format := serializer.Format(raw)
	if format.IsUnknown() {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest, "unsupported format",
			map[string]any{"format": raw, "supported": serializer.SupportedFormats()})
	}
	return format, nil
}
