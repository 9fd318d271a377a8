// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SLACK_SIGNING_SECRET", "")
	t.Setenv("SLACK_BOT_TOKEN", "")
	t.Setenv("LEDGER_FILE", "")
	t.Setenv("PORT", "")

	cfg := Load()
	assert.Equal(t, "attendance.xlsx", cfg.LedgerFile)
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.SigningSecret)
	assert.Empty(t, cfg.BotToken)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SLACK_SIGNING_SECRET", "sek")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-1")
	t.Setenv("LEDGER_FILE", "/data/commute.xlsx")
	t.Setenv("PORT", "9000")

	cfg := Load()
	assert.Equal(t, "sek", cfg.SigningSecret)
	assert.Equal(t, "xoxb-1", cfg.BotToken)
	assert.Equal(t, "/data/commute.xlsx", cfg.LedgerFile)
	assert.Equal(t, "9000", cfg.Port)
}
