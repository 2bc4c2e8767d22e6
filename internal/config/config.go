package config

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
// Everything except the database has a usable default, so a bare checkout runs locally.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	getEnv := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			return value
		}
		return fallback
	}

	getBool := func(key string, fallback bool) bool {
		raw, ok := os.LookupEnv(key)
		if !ok || raw == "" {
			return fallback
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			log.Warn("Ignoring invalid boolean environment variable", "key", key, "value", raw)
			return fallback
		}
		return v
	}

	cfg := Config{
		DBName:        getEnv("DB_NAME", "hockey_stats.db"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "./migrations"),
		Port:          getEnv("PORT", "8080"),
		SeedRoster:    getBool("SEED_ROSTER", true),
		Slack: SlackConfig{
			Token:         getEnv("SLACK_BOT_TOKEN", ""),
			ChannelID:     getEnv("SLACK_CHANNEL_ID", ""),
			SigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnv("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnv("TURSO_AUTH_TOKEN", ""),
		},
		ProjectID: getEnv("GCP_PROJECT", ""),
	}
	return cfg
}
