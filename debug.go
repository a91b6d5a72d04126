// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

// +build debug

package dtc

import (
	"log/slog"
	"os"
)

const _DEBUG bool = true

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

func (c *buildCache) logStats(enabled bool) {
	if !enabled {
		return
	}
	slog.Debug("build cache", "hits", c.stat.hits, "misses", c.stat.misses, "entries", len(c.entries))
}

// traceSearch logs one DAG Builder search step when enabled (-v or
// DTC_DEBUG, threaded through builder.trace) and built with the debug
// tag (SPEC_FULL.md §3/§6).
func traceSearch(enabled bool, bd, candidates int, test string) {
	if !enabled {
		return
	}
	if test == "" {
		slog.Debug("search subproblem", "bound", bd, "candidates", candidates)
		return
	}
	slog.Debug("search step", "bound", bd, "candidates", candidates, "test", test)
}
