// internal/config/config.go
package config

import "os"

type Config struct {
	SigningSecret string
	BotToken      string
	LedgerFile    string
	Port          string
}

// Load reads configuration from the environment. Both Slack credentials are
// optional: a missing signing secret disables signature verification and a
// missing bot token disables name resolution.
func Load() Config {
	cfg := Config{
		SigningSecret: os.Getenv("SLACK_SIGNING_SECRET"),
		BotToken:      os.Getenv("SLACK_BOT_TOKEN"),
		LedgerFile:    os.Getenv("LEDGER_FILE"),
		Port:          os.Getenv("PORT"),
	}
	if cfg.LedgerFile == "" {
		cfg.LedgerFile = "attendance.xlsx"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg
}
