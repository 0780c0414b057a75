package biz

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LikeCacheReadsTotal counts like-count reads by where they were served
	// from. "degraded" means the cache store failed and the read fell back
	// to the source of truth.
	LikeCacheReadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "access_service",
			Subsystem: "like_cache",
			Name:      "reads_total",
			Help:      "Total like-count reads by outcome",
		},
		[]string{"outcome"},
	)

	// LikeCacheInvalidationFailures counts invalidations that failed after
	// an authoritative write committed.
	LikeCacheInvalidationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "access_service",
			Subsystem: "like_cache",
			Name:      "invalidation_failures_total",
			Help:      "Total failed cache invalidations after a committed like mutation",
		},
	)

	// AuditAppendFailures counts audit-trail appends lost after a committed
	// playlist mutation.
	AuditAppendFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "access_service",
			Subsystem: "audit",
			Name:      "append_failures_total",
			Help:      "Total failed audit appends after a committed mutation",
		},
	)
)

const (
	cacheOutcomeHit      = "hit"
	cacheOutcomeMiss     = "miss"
	cacheOutcomeDegraded = "degraded"
)
