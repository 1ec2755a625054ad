package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	webhooksReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "workshop_webhooks_received_total",
			Help: "Total number of workshop signup webhooks received",
		},
	)

	contactsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contacts_created_total",
			Help: "Total number of contacts created by the intake flow",
		},
	)

	registrationsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "workshop_registrations_created_total",
			Help: "Total number of workshop registrations created",
		},
	)

	registrationConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "workshop_registration_conflicts_total",
			Help: "Registrations skipped because of duplicates or capacity",
		},
	)

	workshopMatchMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "workshop_match_misses_total",
			Help: "Parsed descriptors that matched no known workshop",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordWebhookReceived() {
	webhooksReceived.Inc()
}

func RecordContactCreated() {
	contactsCreated.Inc()
}

func RecordRegistrationCreated() {
	registrationsCreated.Inc()
}

func RecordRegistrationConflict() {
	registrationConflicts.Inc()
}

func RecordWorkshopMatchMiss() {
	workshopMatchMisses.Inc()
}
