// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metrics instruments the orchestrator loop: cache hit/miss rates,
// how often the iteration bound is hit, and how often each effect
// suspension fires. These counters register directly against
// github.com/prometheus/client_golang rather than through a go-ethereum-style
// metrics registry adapter, since no such registry type is present in this
// module's dependency graph.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// CacheHits/CacheMisses count core/state.Cache.GetFetched and GetPath
// lookups, labeled by which view (fetched contract vs taken-path) was
// consulted.
var (
	CacheHits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "symevm",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Cache lookups that found a value, by view.",
	}, []string{"view"})

	CacheMisses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "symevm",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Cache lookups that found no value, by view.",
	}, []string{"view"})

	// IterationBoundHits counts how many times a code location's loop
	// iteration counter crossed the configured maximum, producing a
	// MaxIterationsReached partial result.
	IterationBoundHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "symevm",
		Name:      "iteration_bound_hits_total",
		Help:      "Executions that hit the configured loop-iteration bound.",
	})

	// EffectSuspensions counts how often each Effect variant fires,
	// labeled by the variant's type name.
	EffectSuspensions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "symevm",
		Name:      "effect_suspensions_total",
		Help:      "Effect suspensions raised during execution, by variant.",
	}, []string{"effect"})
)

// Registry is the registry these counters are registered against. A
// dedicated registry (rather than prometheus.DefaultRegisterer) keeps a
// library consumer from silently colliding with metric names in its own
// default registry.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(CacheHits, CacheMisses, IterationBoundHits, EffectSuspensions)
}

// ViewFetched and ViewPath label the two Cache views CacheHits/CacheMisses
// track.
const (
	ViewFetched = "fetched"
	ViewPath    = "path"
)

// RecordCacheLookup records a cache lookup outcome for the given view.
func RecordCacheLookup(view string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(view).Inc()
		return
	}
	CacheMisses.WithLabelValues(view).Inc()
}

// RecordEffect records that an effect of the given variant name fired.
func RecordEffect(variant string) {
	EffectSuspensions.WithLabelValues(variant).Inc()
}
