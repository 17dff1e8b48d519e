package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MetricResolutionsTotal counts resolved descriptions by quality
	MetricResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "matiz_resolutions_total",
		Help: "Total color descriptions resolved, by resolution quality",
	}, []string{"quality"})

	// MetricRequestsTotal counts HTTP requests by route and status code
	MetricRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "matiz_http_requests_total",
		Help: "Total HTTP requests by route and status code",
	}, []string{"route", "code"})
)
