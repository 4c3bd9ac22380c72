// Package metrics holds the Prometheus collectors shared by the path search,
// the game solver and the CLI.
//
// Collectors are package-level and always safe to update; they are only
// exported once Register has been called with a Registerer.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lvsearch"

// Search label values.
const (
	SearchPath = "path"
	SearchGame = "game"
)

// Result label values.
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
	ResultMove     = "move"
	ResultTerminal = "terminal"
	ResultError    = "error"
	ResultHit      = "hit"
	ResultMiss     = "miss"
)

var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Count of completed searches by kind and outcome",
		},
		[]string{"search", "result"},
	)
	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Time taken by a single search",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5},
		},
		[]string{"search"},
	)
	NodesExpanded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_expanded_total",
			Help:      "Search nodes expanded (people for path search, positions for game search)",
		},
		[]string{"search"},
	)
	SolverCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solver_cache_total",
			Help:      "Solver cache lookups by result",
		},
		[]string{"result"},
	)
)

// Collectors returns every collector of the package.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		SearchesTotal,
		SearchDuration,
		NodesExpanded,
		SolverCache,
	}
}

// Register registers all collectors with reg. Collectors that are already
// registered with reg are not an error, so Register may be called more
// than once.
func Register(reg prometheus.Registerer) error {
	const op = "metrics.Register"

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range Collectors() {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

// ObservePath records one path search. err takes precedence over found.
func ObservePath(found bool, expanded int, d time.Duration, err error) {
	result := ResultNotFound
	switch {
	case err != nil:
		result = ResultError
	case found:
		result = ResultFound
	}
	SearchesTotal.WithLabelValues(SearchPath, result).Inc()
	SearchDuration.WithLabelValues(SearchPath).Observe(d.Seconds())
	NodesExpanded.WithLabelValues(SearchPath).Add(float64(expanded))
}

// ObserveGame records one game-tree search; moved is false for a terminal
// position.
func ObserveGame(moved bool, nodes int64, d time.Duration) {
	result := ResultTerminal
	if moved {
		result = ResultMove
	}
	SearchesTotal.WithLabelValues(SearchGame, result).Inc()
	SearchDuration.WithLabelValues(SearchGame).Observe(d.Seconds())
	NodesExpanded.WithLabelValues(SearchGame).Add(float64(nodes))
}

// CacheHit counts a solver cache hit.
func CacheHit() { SolverCache.WithLabelValues(ResultHit).Inc() }

// CacheMiss counts a solver cache miss.
func CacheMiss() { SolverCache.WithLabelValues(ResultMiss).Inc() }
