package mindly

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mindly_client",
			Name:      "requests_total",
			Help:      "API operations attempted, by operation.",
		},
		[]string{"operation"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mindly_client",
			Name:      "request_failures_total",
			Help:      "API operations that returned an error, by operation.",
		},
		[]string{"operation"},
	)
)

func observe(operation string, err error) {
	requestsTotal.WithLabelValues(operation).Inc()
	if err != nil {
		requestFailuresTotal.WithLabelValues(operation).Inc()
	}
}
