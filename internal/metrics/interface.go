package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncSubmissions(autosave bool)
	IncSubmissionFailures()
	AddCounterSetChanges(inserted, updated, deleted int)
	ObserveSubmitDuration(seconds float64)
	IncStatsDeleted()
	AddGamesDeleted(n int)
	IncDeleteFailures()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	IncEventsPublished()
	SetStartupTime(duration float64)
}
