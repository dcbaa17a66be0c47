package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, path and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	TapsAdmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rfid_taps_admitted_total",
			Help: "RFID taps accepted into the access log",
		},
	)

	TapsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rfid_taps_rejected_total",
			Help: "RFID taps rejected, by reason (daily_limit, unregistered)",
		},
		[]string{"reason"},
	)

	NotificationsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "telegram_notifications_failed_total",
			Help: "Telegram notifications that could not be delivered",
		},
	)
)
