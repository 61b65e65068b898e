package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dpa_navigator_http_requests_total",
			Help: "Total number of API requests by route and status code",
		},
		[]string{"route", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dpa_navigator_http_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	recommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dpa_navigator_recommendations_total",
			Help: "Total number of recommendations served, by whether the profile was complete",
		},
		[]string{"complete"},
	)

	eligibleProgramsObserved = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dpa_navigator_eligible_programs",
			Help:    "Number of eligible cash-assistance programs per complete recommendation",
			Buckets: prometheus.LinearBuckets(0, 2, 8),
		},
	)
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument records request count and latency under route.
func instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		requestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func observeRecommendation(complete bool, eligible int) {
	recommendationsTotal.WithLabelValues(strconv.FormatBool(complete)).Inc()
	if complete {
		eligibleProgramsObserved.Observe(float64(eligible))
	}
}
