package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	LoadRuns = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "twondb_load_runs_total",
		Help: "Total completed bulk load runs",
	})
	LoadErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "twondb_load_errors_total",
		Help: "Total bulk load runs that rolled back",
	})
	LoadRowsSkipped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "twondb_load_rows_skipped_total",
		Help: "Total malformed rows dropped during bulk loads",
	})
	FeedQueries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "twondb_feed_queries_total",
		Help: "Total feed engine queries served over HTTP",
	}, []string{"operation"})
)

func init() {
	prometheus.MustRegister(LoadRuns, LoadErrors, LoadRowsSkipped, FeedQueries)
}

// IncFeedQuery increments the query counter for an engine operation.
func IncFeedQuery(operation string) { FeedQueries.WithLabelValues(operation).Inc() }
