package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PostsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "masterblog", Name: "posts_created_total", Help: "Number of posts created."},
	)
	PostsUpdated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "masterblog", Name: "posts_updated_total", Help: "Number of posts updated."},
	)
	PostsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "masterblog", Name: "posts_deleted_total", Help: "Number of posts deleted."},
	)
	SearchQueries = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "masterblog", Name: "search_queries_total", Help: "Number of search requests served."},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "masterblog", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "masterblog", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(PostsCreated)
	reg.MustRegister(PostsUpdated)
	reg.MustRegister(PostsDeleted)
	reg.MustRegister(SearchQueries)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
