package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/hockey-stats/internal/gamedate"
	"github.com/mauv0809/hockey-stats/internal/metrics"
	"github.com/mauv0809/hockey-stats/internal/notifier"
	"github.com/mauv0809/hockey-stats/internal/stats"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// leaderboardSize caps the slash-command response; Slack rejects messages with more than 50 blocks.
const leaderboardSize = 10

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-channel", "dry-run-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendGameSummary(summary notifier.GameSummary, dryRun bool) error {
	msg := s.formatGameSummary(summary)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// FormatLeaderboardResponse formats a leaderboard message for a slash command response.
func (s *Notifier) FormatLeaderboardResponse(players []stats.PlayerTotals) (any, error) {
	return s.formatLeaderboard(players), nil
}

// formatGameSummary lists every player with a stat line for the game, by jersey number.
func (s *Notifier) formatGameSummary(summary notifier.GameSummary) slack.Message {
	blocks := make([]slack.Block, 0)

	title := "🏒 Game stats saved 🏒"
	if summary.GameName != "" {
		title = fmt.Sprintf("🏒 %s 🏒", summary.GameName)
	}
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", title, true, false)))
	blocks = append(blocks, slack.NewSectionBlock(
		slack.NewTextBlockObject("plain_text", gamedate.Display(summary.GameDate), false, false), nil, nil))

	if len(summary.Lines) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No stats recorded for this game.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	lines := append([]notifier.SummaryLine(nil), summary.Lines...)
	sort.Slice(lines, func(i, j int) bool { return lines[i].Number < lines[j].Number })

	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "#%d %s: %+d | BS %d | TA %d | SOG %d",
			l.Number, l.Name, l.PlusMinus, l.BlockedShots, l.Takeaways, l.ShotsTaken)
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", b.String(), false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatLeaderboard ranks players by plus/minus, then blocked shots, then takeaways.
// Players who have not played yet are left out.
func (s *Notifier) formatLeaderboard(players []stats.PlayerTotals) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Defensive Leaderboard 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	ranked := make([]stats.PlayerTotals, 0, len(players))
	for _, p := range players {
		if p.Stats.GamesPlayed > 0 {
			ranked = append(ranked, p)
		}
	}
	if len(ranked) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No stats available yet. Go play some games!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].Stats, ranked[j].Stats
		if a.PlusMinus != b.PlusMinus {
			return a.PlusMinus > b.PlusMinus
		}
		if a.BlockedShots != b.BlockedShots {
			return a.BlockedShots > b.BlockedShots
		}
		return a.Takeaways > b.Takeaways
	})
	if len(ranked) > leaderboardSize {
		ranked = ranked[:leaderboardSize]
	}

	for i, p := range ranked {
		rank := i + 1
		var medal string
		switch rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}

		playerText := fmt.Sprintf("%d. %s #%d %s\n> +/-: %+d | Blocked: %d | Takeaways: %d | Shots: %d | GP: %d",
			rank,
			medal,
			p.Number,
			p.Name,
			p.Stats.PlusMinus,
			p.Stats.BlockedShots,
			p.Stats.Takeaways,
			p.Stats.ShotsTaken,
			p.Stats.GamesPlayed,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", playerText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}
