package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_NAME", "MIGRATIONS_DIR", "PORT", "SEED_ROSTER", "SLACK_BOT_TOKEN", "SLACK_CHANNEL_ID", "GCP_PROJECT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "hockey_stats.db", cfg.DBName)
	assert.Equal(t, "./migrations", cfg.MigrationsDir)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.SeedRoster)
	assert.False(t, cfg.Slack.Enabled())
	assert.Empty(t, cfg.ProjectID)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_NAME", "team.db")
	t.Setenv("PORT", "9090")
	t.Setenv("SEED_ROSTER", "false")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_CHANNEL_ID", "C123")

	cfg := Load()

	assert.Equal(t, "team.db", cfg.DBName)
	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.SeedRoster)
	assert.True(t, cfg.Slack.Enabled())
}

func TestLoad_InvalidBoolFallsBack(t *testing.T) {
	t.Setenv("SEED_ROSTER", "sometimes")

	assert.True(t, Load().SeedRoster)
}
