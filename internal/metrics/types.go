package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	Submissions        *prometheus.CounterVec
	SubmissionFailures prometheus.Counter
	CounterSetChanges  *prometheus.CounterVec
	SubmitDuration     prometheus.Histogram
	StatsDeleted       prometheus.Counter
	GamesDeleted       prometheus.Counter
	DeleteFailures     prometheus.Counter
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	EventsPublished    prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
