//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package metrics

import (
	nethttp "net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder receives the measurements the signup pipeline and HTTP layer
// emit. Implementations must be safe for concurrent use.
type Recorder interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
	ObserveSignup(success bool, duration time.Duration)
	ObserveStorage(operation string, success bool, duration time.Duration)
	ObserveVerification(success bool, duration time.Duration)
	CountNotification(kind string, success bool)
}

// PromRecorder implements Recorder on a private Prometheus registry so test
// instances never collide on the default global registry.
type PromRecorder struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	signups       *prometheus.CounterVec
	signupSeconds prometheus.Histogram
	storageOps    *prometheus.CounterVec
	storageSecs   *prometheus.HistogramVec
	verifications *prometheus.CounterVec
	verifySeconds prometheus.Histogram
	notifications *prometheus.CounterVec
}

func NewPromRecorder() *PromRecorder {
	r := &PromRecorder{registry: prometheus.NewRegistry()}

	r.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "signup_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})
	r.httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "signup_http_request_duration_seconds",
		Help:    "HTTP request duration by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	r.signups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "signup_submissions_total",
		Help: "Signup submissions by outcome.",
	}, []string{"outcome"})
	r.signupSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "signup_submission_duration_seconds",
		Help:    "End-to-end signup pipeline duration.",
		Buckets: prometheus.DefBuckets,
	})
	r.storageOps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "signup_storage_operations_total",
		Help: "Storage collaborator calls by operation and outcome.",
	}, []string{"operation", "outcome"})
	r.storageSecs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "signup_storage_operation_duration_seconds",
		Help:    "Storage collaborator call duration by operation.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	r.verifications = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "signup_bot_verifications_total",
		Help: "Bot verification attempts by outcome.",
	}, []string{"outcome"})
	r.verifySeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "signup_bot_verification_duration_seconds",
		Help:    "Bot verification call duration.",
		Buckets: prometheus.DefBuckets,
	})
	r.notifications = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "signup_notifications_total",
		Help: "Notification deliveries by kind and outcome.",
	}, []string{"kind", "outcome"})

	r.registry.MustRegister(
		r.httpRequests, r.httpDuration,
		r.signups, r.signupSeconds,
		r.storageOps, r.storageSecs,
		r.verifications, r.verifySeconds,
		r.notifications,
	)
	return r
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

func (r *PromRecorder) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (r *PromRecorder) ObserveSignup(success bool, duration time.Duration) {
	r.signups.WithLabelValues(outcome(success)).Inc()
	r.signupSeconds.Observe(duration.Seconds())
}

func (r *PromRecorder) ObserveStorage(operation string, success bool, duration time.Duration) {
	r.storageOps.WithLabelValues(operation, outcome(success)).Inc()
	r.storageSecs.WithLabelValues(operation).Observe(duration.Seconds())
}

func (r *PromRecorder) ObserveVerification(success bool, duration time.Duration) {
	r.verifications.WithLabelValues(outcome(success)).Inc()
	r.verifySeconds.Observe(duration.Seconds())
}

func (r *PromRecorder) CountNotification(kind string, success bool) {
	r.notifications.WithLabelValues(kind, outcome(success)).Inc()
}

// Handler serves the registry in Prometheus text exposition format.
func (r *PromRecorder) Handler() nethttp.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// NopRecorder discards every measurement. Used when metrics are disabled
// and as the default in tests that do not assert on metrics.
type NopRecorder struct{}

func (NopRecorder) ObserveHTTPRequest(string, string, int, time.Duration) {}
func (NopRecorder) ObserveSignup(bool, time.Duration)                     {}
func (NopRecorder) ObserveStorage(string, bool, time.Duration)            {}
func (NopRecorder) ObserveVerification(bool, time.Duration)               {}
func (NopRecorder) CountNotification(string, bool)                        {}
