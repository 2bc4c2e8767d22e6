package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hockey_game_submissions_total",
			Help: "The total number of game stat sheets saved.",
		}, []string{"autosave"}),
		SubmissionFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hockey_game_submission_failures_total",
			Help: "The total number of game stat sheets that were rejected or rolled back.",
		}),
		CounterSetChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hockey_counter_set_changes_total",
			Help: "Counter sets inserted, updated or deleted by game submissions.",
		}, []string{"op"}),
		SubmitDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "hockey_game_submission_duration_seconds",
			Help:    "The duration of game submission transactions.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		StatsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hockey_stats_deleted_total",
			Help: "The total number of counter sets deleted one at a time.",
		}),
		GamesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hockey_games_deleted_total",
			Help: "The total number of games deleted, single or bulk.",
		}),
		DeleteFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hockey_game_delete_failures_total",
			Help: "Game deletions that were rolled back.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hockey_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hockey_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hockey_events_published_total",
			Help: "The total number of game events published.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hockey_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.Submissions,
		s.SubmissionFailures,
		s.CounterSetChanges,
		s.SubmitDuration,
		s.StatsDeleted,
		s.GamesDeleted,
		s.DeleteFailures,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.EventsPublished,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncSubmissions(autosave bool) {
	s.Submissions.WithLabelValues(strconv.FormatBool(autosave)).Inc()
}

func (s *Service) IncSubmissionFailures() {
	s.SubmissionFailures.Inc()
}

func (s *Service) AddCounterSetChanges(inserted, updated, deleted int) {
	s.CounterSetChanges.WithLabelValues("insert").Add(float64(inserted))
	s.CounterSetChanges.WithLabelValues("update").Add(float64(updated))
	s.CounterSetChanges.WithLabelValues("delete").Add(float64(deleted))
}

func (s *Service) ObserveSubmitDuration(seconds float64) {
	s.SubmitDuration.Observe(seconds)
}

func (s *Service) IncStatsDeleted() {
	s.StatsDeleted.Inc()
}

func (s *Service) AddGamesDeleted(n int) {
	s.GamesDeleted.Add(float64(n))
}

func (s *Service) IncDeleteFailures() {
	s.DeleteFailures.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) IncEventsPublished() {
	s.EventsPublished.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
