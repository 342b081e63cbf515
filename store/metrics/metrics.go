// Copyright 2026 Dolthub, Inc.
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

// Package metrics exposes the engine's prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ScansExecuted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "colt",
		Subsystem: "scan",
		Name:      "executions_total",
		Help:      "Number of table scans executed.",
	})

	RowsScanned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "colt",
		Subsystem: "scan",
		Name:      "rows_scanned_total",
		Help:      "Number of input rows evaluated by table scans.",
	})

	RowsMatched = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "colt",
		Subsystem: "scan",
		Name:      "rows_matched_total",
		Help:      "Number of rows emitted by table scans.",
	})

	ScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "colt",
		Subsystem: "scan",
		Name:      "duration_seconds",
		Help:      "Wall time of table scan executions.",
		Buckets:   prometheus.DefBuckets,
	})

	ChunksCompressed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "colt",
		Subsystem: "storage",
		Name:      "chunks_compressed_total",
		Help:      "Number of chunks dictionary-compressed.",
	})
)
