package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SignupsTotal counts completed registrations.
	SignupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bloodlink_signups_total",
		Help: "The total number of registered users",
	})

	// SOSRequestsTotal counts raised SOS requests.
	SOSRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bloodlink_sos_requests_total",
		Help: "The total number of SOS requests raised",
	})

	// AlertDispatchFailures counts SOS alerts that could not be delivered.
	AlertDispatchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bloodlink_alert_dispatch_failures_total",
		Help: "The total number of SOS alert dispatch failures",
	})

	// ReportsEvaluated counts eligibility evaluations by verdict.
	ReportsEvaluated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bloodlink_reports_evaluated_total",
		Help: "The total number of medical report evaluations by verdict",
	}, []string{"verdict"})
)
