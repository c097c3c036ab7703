package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts every HTTP request the service receives.
	RequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "admin_service_requests_total",
		Help: "The total number of HTTP requests",
	})

	// ResponsesTotal counts responses by status code.
	ResponsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "admin_service_responses_total",
		Help: "The total number of HTTP responses by status code",
	}, []string{"status"})

	// RequestDuration observes request handling time.
	RequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "admin_service_request_duration_seconds",
		Help:    "The request duration in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// RequestDurationByPath observes handling time per method and route.
	RequestDurationByPath = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "admin_service_request_duration_by_path_seconds",
		Help:    "The request duration in seconds by method and path",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// LoginAttemptsTotal counts login attempts by outcome.
	LoginAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "admin_service_login_attempts_total",
		Help: "The total number of login attempts",
	}, []string{"status"})

	// PasswordResetRequestsTotal counts reset requests. The count is the
	// same for known and unknown emails; it carries no account signal.
	PasswordResetRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "admin_service_password_reset_requests_total",
		Help: "The total number of password reset requests",
	})

	// ResetTokenConsumptionsTotal counts reset token redemptions by outcome.
	ResetTokenConsumptionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "admin_service_reset_token_consumptions_total",
		Help: "The total number of reset token redemption attempts",
	}, []string{"status"})
)
