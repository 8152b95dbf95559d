package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "stepsocial"

// Friend request lifecycle events.
const (
	FriendRequestSent      = "sent"
	FriendRequestAccepted  = "accepted"
	FriendRequestRejected  = "rejected"
	FriendRequestCancelled = "cancelled"
)

// UnmatchedRoute labels requests that hit no registered route.
const UnmatchedRoute = "unmatched"

// Streak computation sources.
const (
	StreakFromCache    = "cache"
	StreakFromComputed = "computed"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	friendRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "social",
			Name:      "friend_requests_total",
			Help:      "Friend request lifecycle events.",
		},
		[]string{"event"},
	)

	stepUpserts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "activity",
			Name:      "step_upserts_total",
			Help:      "Total number of daily step records written.",
		},
	)

	streakComputations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "activity",
			Name:      "streak_computations_total",
			Help:      "Streak lookups by where the answer came from.",
		},
		[]string{"source"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		friendRequests,
		stepUpserts,
		streakComputations,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RouteLabeler names the route a request is counted under. It must return a
// bounded set of values.
type RouteLabeler func(r *http.Request) string

// RouteTemplate labels requests with the path template of the matching mux
// route, e.g. /api/social/relationship/{userId}.
func RouteTemplate(router *mux.Router) RouteLabeler {
	return func(r *http.Request) string {
		var match mux.RouteMatch
		if !router.Match(r, &match) || match.Route == nil {
			return UnmatchedRoute
		}
		tpl, err := match.Route.GetPathTemplate()
		if err != nil {
			return UnmatchedRoute
		}
		return tpl
	}
}

// InstrumentHandler wraps the provided handler with HTTP metrics collection.
func InstrumentHandler(next http.Handler, route RouteLabeler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		path := route(r)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		method := strings.ToUpper(r.Method)
		httpRequests.WithLabelValues(method, path, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	})
}

func RecordFriendRequest(event string) {
	friendRequests.WithLabelValues(event).Inc()
}

func RecordStepUpsert() {
	stepUpserts.Inc()
}

func RecordStreakComputation(source string) {
	streakComputations.WithLabelValues(source).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
