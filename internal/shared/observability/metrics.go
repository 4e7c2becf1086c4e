package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	FilesAnalyzedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vibescan_files_analyzed_total",
		Help: "Total number of source files folded into a report.",
	})

	FileFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vibescan_file_failures_total",
		Help: "Total number of files skipped because they could not be read or analyzed.",
	})

	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vibescan_stage_seconds",
		Help:    "Time spent in each pipeline stage.",
		Buckets: prometheus.DefBuckets,
	}, []string{"stage"})

	PatternTriggersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vibescan_pattern_triggers_total",
		Help: "Files that tripped each machine-generation detector.",
	}, []string{"pattern"})
)
