package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reactionToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vidtube_reaction_toggles_total",
		Help: "Reaction toggles by target kind and resulting state.",
	}, []string{"kind", "state"})

	counterRepairs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vidtube_counter_repairs_total",
		Help: "Denormalized counters rewritten by reconciliation.",
	}, []string{"kind"})

	videoCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vidtube_video_cache_hits_total",
		Help: "Video detail cache hits.",
	})

	videoCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vidtube_video_cache_misses_total",
		Help: "Video detail cache misses.",
	})

	videoLookupSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vidtube_video_lookup_seconds",
		Help:    "Video detail lookup latency by cache outcome.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})

	publications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vidtube_publications_total",
		Help: "Video publications by final state.",
	}, []string{"state"})
)

func IncReactionToggle(kind, state string) {
	reactionToggles.WithLabelValues(kind, state).Inc()
}

func IncCounterRepair(kind string) {
	counterRepairs.WithLabelValues(kind).Inc()
}

func IncVideoCacheHit(seconds float64) {
	videoCacheHits.Inc()
	videoLookupSeconds.WithLabelValues("hit").Observe(seconds)
}

func IncVideoCacheMiss(seconds float64) {
	videoCacheMisses.Inc()
	videoLookupSeconds.WithLabelValues("miss").Observe(seconds)
}

func IncPublication(state string) {
	publications.WithLabelValues(state).Inc()
}
