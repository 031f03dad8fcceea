package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arevo_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "arevo_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	EnrollmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arevo_enrollments_total",
			Help: "Total number of class enrollment attempts by outcome",
		},
		[]string{"outcome", "payment_program"},
	)

	CapacityLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arevo_capacity_lookups_total",
			Help: "Total number of batched capacity aggregation calls",
		},
		[]string{"result"},
	)

	PaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arevo_payments_total",
			Help: "Total number of checkout payments by method and final status",
		},
		[]string{"method", "status"},
	)

	MatchesCompletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "arevo_matches_completed_total",
			Help: "Total number of tournament matches completed",
		},
	)

	DrawsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arevo_tournament_draws_total",
			Help: "Total number of tournament draw executions",
		},
		[]string{"status"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arevo_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "arevo_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordEnrollment(outcome, program string) {
	EnrollmentsTotal.WithLabelValues(outcome, program).Inc()
}

func RecordCapacityLookup(result string) {
	CapacityLookupsTotal.WithLabelValues(result).Inc()
}

func RecordPayment(method, status string) {
	PaymentsTotal.WithLabelValues(method, status).Inc()
}

func RecordMatchCompleted() {
	MatchesCompletedTotal.Inc()
}

func RecordDraw(status string) {
	DrawsTotal.WithLabelValues(status).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
