package http

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/hockey-stats/internal/gamedate"
	"github.com/mauv0809/hockey-stats/internal/games"
	"github.com/mauv0809/hockey-stats/internal/notifier"
	"github.com/mauv0809/hockey-stats/internal/pubsub"
	"github.com/mauv0809/hockey-stats/internal/roster"
	"github.com/mauv0809/hockey-stats/internal/stats"
	"github.com/slack-go/slack"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// DashboardHandler lists every player with lifetime totals, in roster order.
func (s *Server) DashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Stats.PlayerTotals(r.Context())
		if err != nil {
			http.Error(w, "Failed to get player totals", http.StatusInternalServerError)
			log.Error("Failed to get player totals", "error", err)
			return
		}
		respondWithJSON(w, http.StatusOK, players)
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Roster.ListPlayers(r.Context())
		if err != nil {
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			log.Error("Failed to get players from store", "error", err)
			return
		}
		respondWithJSON(w, http.StatusOK, players)
	}
}

// RecordGameHandler returns what the record-game form needs. When only a date is given the
// stored game name is filled in.
func (s *Server) RecordGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Roster.ListPlayers(r.Context())
		if err != nil {
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			log.Error("Failed to get players from store", "error", err)
			return
		}

		view := recordGameView{
			Players:         players,
			InitialGameDate: r.URL.Query().Get("date"),
			InitialGameName: r.URL.Query().Get("name"),
		}
		if view.InitialGameDate != "" && view.InitialGameName == "" {
			if d, err := gamedate.Parse(view.InitialGameDate); err == nil {
				if g, err := s.Games.GetGame(r.Context(), d); err == nil {
					view.InitialGameName = g.Name
				}
			}
		}
		respondWithJSON(w, http.StatusOK, view)
	}
}

func (s *Server) SaveGameStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sub stats.Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			log.Warn("Failed to decode game submission", "error", err)
			s.Metrics.IncSubmissionFailures()
			respondWithJSON(w, http.StatusBadRequest, stats.Result{Message: "Invalid request body: " + err.Error()})
			return
		}

		start := time.Now()
		res, err := s.Stats.SubmitGame(r.Context(), sub)
		if err != nil {
			log.Error("Failed to save game stats", "error", err, "game_date", sub.GameDate, "request_id", requestIDFromContext(r))
			s.Metrics.IncSubmissionFailures()
			respondWithJSON(w, http.StatusBadRequest, stats.Result{Message: err.Error()})
			return
		}
		s.Metrics.ObserveSubmitDuration(time.Since(start).Seconds())
		s.Metrics.IncSubmissions(sub.Autosave)
		s.Metrics.AddCounterSetChanges(res.Inserted, res.Updated, res.Deleted)

		event := pubsub.GameSubmitted{
			GameDate:    res.GameDate,
			GameName:    sub.GameName,
			Autosave:    sub.Autosave,
			Inserted:    res.Inserted,
			Updated:     res.Updated,
			Deleted:     res.Deleted,
			GameCreated: res.GameCreated,
		}
		s.publish(pubsub.EventGameSubmitted, event)

		// With Pub/Sub configured the summary is posted by the push subscription instead.
		if !sub.Autosave && s.Cfg.ProjectID == "" {
			s.notifyGame(r.Context(), res.GameDate, isDryRunFromContext(r))
		}

		respondWithJSON(w, http.StatusOK, res)
	}
}

func (s *Server) PlayerDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		player, err := s.Roster.GetPlayer(r.Context(), id)
		if err != nil {
			if errors.Is(err, roster.ErrPlayerNotFound) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, "Failed to get player", http.StatusInternalServerError)
			log.Error("Failed to get player", "error", err, "player_id", id)
			return
		}

		history, err := s.Stats.PlayerHistory(r.Context(), id)
		if err != nil {
			http.Error(w, "Failed to get player stats", http.StatusInternalServerError)
			log.Error("Failed to get player history", "error", err, "player_id", id)
			return
		}
		totals, err := s.Stats.Totals(r.Context(), id)
		if err != nil {
			http.Error(w, "Failed to get player stats", http.StatusInternalServerError)
			log.Error("Failed to get player totals", "error", err, "player_id", id)
			return
		}

		respondWithJSON(w, http.StatusOK, playerView{Player: player, GameStats: history, TotalStats: totals})
	}
}

// AddPlayerHandler adds a player from the form fields number and name.
func (s *Server) AddPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number, err := strconv.Atoi(strings.TrimSpace(r.FormValue("number")))
		name := strings.TrimSpace(r.FormValue("name"))
		if err != nil || number < 0 || name == "" {
			http.Error(w, "A jersey number and a name are required", http.StatusBadRequest)
			return
		}

		player, err := s.Roster.AddPlayer(r.Context(), number, name)
		if err != nil {
			if errors.Is(err, roster.ErrDuplicateNumber) {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			http.Error(w, "Failed to add player", http.StatusInternalServerError)
			log.Error("Failed to add player", "error", err, "number", number)
			return
		}
		respondWithJSON(w, http.StatusCreated, player)
	}
}

func (s *Server) RenamePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		name := strings.TrimSpace(r.FormValue("name"))
		if name == "" {
			http.Error(w, "A name is required", http.StatusBadRequest)
			return
		}

		if err := s.Roster.RenamePlayer(r.Context(), id, name); err != nil {
			if errors.Is(err, roster.ErrPlayerNotFound) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, "Failed to rename player", http.StatusInternalServerError)
			log.Error("Failed to rename player", "error", err, "player_id", id)
			return
		}
		http.Redirect(w, r, fmt.Sprintf("/player/%d", id), http.StatusSeeOther)
	}
}

// DeletePlayerHandler removes a player together with every stat recorded for them.
func (s *Server) DeletePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		if err := s.Roster.DeletePlayer(r.Context(), id); err != nil {
			if errors.Is(err, roster.ErrPlayerNotFound) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, "Failed to delete player", http.StatusInternalServerError)
			log.Error("Failed to delete player", "error", err, "player_id", id)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (s *Server) DeleteStatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		playerID, err := s.Stats.DeleteCounterSet(r.Context(), id)
		if err != nil {
			if errors.Is(err, stats.ErrStatNotFound) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, "Failed to delete stat", http.StatusInternalServerError)
			log.Error("Failed to delete stat", "error", err, "stat_id", id)
			return
		}
		s.Metrics.IncStatsDeleted()
		http.Redirect(w, r, fmt.Sprintf("/player/%d", playerID), http.StatusSeeOther)
	}
}

func (s *Server) ListGamesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, err := s.Games.ListGames(r.Context())
		if err != nil {
			http.Error(w, "Failed to get games", http.StatusInternalServerError)
			log.Error("Failed to get games", "error", err)
			return
		}
		respondWithJSON(w, http.StatusOK, views)
	}
}

// DeleteGameHandler always redirects to the dashboard; failures are only logged.
func (s *Server) DeleteGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer http.Redirect(w, r, "/", http.StatusSeeOther)

		raw := r.FormValue("date")
		d, err := gamedate.Parse(raw)
		if err != nil {
			log.Warn("Ignoring delete for unparseable game date", "date", raw, "error", err)
			return
		}
		if err := s.Games.DeleteGame(r.Context(), d); err != nil {
			s.Metrics.IncDeleteFailures()
			log.Error("Failed to delete game", "error", err, "game_date", raw)
			return
		}
		s.Metrics.AddGamesDeleted(1)
		s.publish(pubsub.EventGameDeleted, pubsub.GameDeleted{GameDates: []string{gamedate.Key(d)}})
	}
}

// DeleteGamesBulkHandler always redirects to the games list; failures are only logged.
func (s *Server) DeleteGamesBulkHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer http.Redirect(w, r, "/games", http.StatusSeeOther)

		if err := r.ParseForm(); err != nil {
			log.Warn("Failed to parse bulk delete form", "error", err)
			return
		}
		dates := r.PostForm["dates"]
		if len(dates) == 0 {
			return
		}

		skipped, err := s.Games.DeleteGames(r.Context(), dates)
		if err != nil {
			s.Metrics.IncDeleteFailures()
			log.Error("Failed to delete games", "error", err, "count", len(dates))
			return
		}

		deleted := make([]string, 0, len(dates))
		for _, raw := range dates {
			if d, err := gamedate.Parse(raw); err == nil {
				deleted = append(deleted, gamedate.Key(d))
			}
		}
		s.Metrics.AddGamesDeleted(len(deleted))
		log.Info("Bulk deleted games", "deleted", len(deleted), "skipped", len(skipped))
		if len(deleted) > 0 {
			s.publish(pubsub.EventGameDeleted, pubsub.GameDeleted{GameDates: deleted})
		}
	}
}

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	respondWithJSON(w, http.StatusOK, msg)
}

// LeaderboardCommandHandler returns a handler for the /leaderboard Slack command.
func (s *Server) LeaderboardCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Stats.PlayerTotals(r.Context())
		if err != nil {
			http.Error(w, "Failed to get player totals", http.StatusInternalServerError)
			log.Error("Failed to get player totals", "error", err)
			return
		}

		msg, err := s.Notifier.FormatLeaderboardResponse(players)
		if err != nil {
			http.Error(w, "Failed to format leaderboard", http.StatusInternalServerError)
			log.Error("Failed to format leaderboard", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}

		respondWithSlackMsg(w, slackMsg)
	}
}

// GameSubmittedPushHandler receives game-submitted events from a Pub/Sub push subscription and
// posts the game summary to Slack.
func (s *Server) GameSubmittedPushHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received game-submitted message", "body", string(bodyBytes))

		var envelope pushEnvelope
		if err := json.Unmarshal(bodyBytes, &envelope); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		rawData, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		var event pubsub.GameSubmitted
		if err := s.pubsub.ProcessMessage(rawData, &event); err != nil {
			http.Error(w, "Invalid message data", http.StatusBadRequest)
			return
		}
		if !event.Autosave {
			s.notifyGame(r.Context(), event.GameDate, isDryRunFromContext(r))
		}
		w.Write([]byte("OK"))
	}
}

// notifyGame posts the current sheet for gameDate to Slack. Failures are logged only, a
// saved game is never reported as failed because of Slack.
func (s *Server) notifyGame(ctx context.Context, gameDate time.Time, dryRun bool) {
	if !s.Cfg.Slack.Enabled() && !dryRun {
		return
	}

	sheet, err := s.Stats.GameSheet(ctx, gameDate)
	if err != nil {
		log.Error("Failed to load game sheet for summary", "error", err)
		return
	}
	players, err := s.Roster.ListPlayers(ctx)
	if err != nil {
		log.Error("Failed to load roster for summary", "error", err)
		return
	}
	byID := make(map[int64]roster.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	summary := notifier.GameSummary{GameDate: gameDate}
	if g, err := s.Games.GetGame(ctx, gameDate); err == nil {
		summary.GameName = g.Name
	} else if !errors.Is(err, games.ErrGameNotFound) {
		log.Warn("Failed to load game name for summary", "error", err)
	}
	for _, set := range sheet {
		p := byID[set.PlayerID]
		summary.Lines = append(summary.Lines, notifier.SummaryLine{Number: p.Number, Name: p.Name, Counters: set.Counters})
	}

	if err := s.Notifier.SendGameSummary(summary, dryRun); err != nil {
		log.Error("Failed to send game summary", "error", err, "game_date", gamedate.Key(gameDate))
	}
}

// publish sends an event and logs instead of failing the request.
func (s *Server) publish(topic pubsub.EventType, data any) {
	if err := s.pubsub.SendMessage(topic, data); err != nil {
		log.Error("Failed to publish event", "error", err, "topic", topic)
		return
	}
	s.Metrics.IncEventsPublished()
}

func respondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}
