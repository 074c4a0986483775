package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("DB_NAME", "test.db")
	t.Setenv("PORT", "8080")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_CHANNEL_ID", "C123")
	t.Setenv("GCP_PROJECT", "test-project")

	cfg := Load()
	assert.Equal(t, "test.db", cfg.DBName)
	assert.Equal(t, "./migrations", cfg.MigrationsDir)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "xoxb-test", cfg.Slack.Token)
	assert.Equal(t, "C123", cfg.Slack.ChannelID)
	assert.Equal(t, "test-project", cfg.ProjectID)

	// Turso is optional and defaults to empty.
	assert.Empty(t, cfg.Turso.PrimaryURL)
	assert.Empty(t, cfg.Turso.AuthToken)
}

func TestLoadOptionalTurso(t *testing.T) {
	t.Setenv("DB_NAME", "test.db")
	t.Setenv("PORT", "8080")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_CHANNEL_ID", "C123")
	t.Setenv("GCP_PROJECT", "test-project")
	t.Setenv("TURSO_PRIMARY_URL", "libsql://bracket.turso.io")
	t.Setenv("TURSO_AUTH_TOKEN", "token")

	cfg := Load()
	assert.Equal(t, "libsql://bracket.turso.io", cfg.Turso.PrimaryURL)
	assert.Equal(t, "token", cfg.Turso.AuthToken)
}
