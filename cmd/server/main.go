// cmd/server/main.go
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/NakedFlower/Commute/internal/config"
	"github.com/NakedFlower/Commute/internal/ledger"
	"github.com/NakedFlower/Commute/internal/routes"
	"github.com/NakedFlower/Commute/internal/slackapi"
	"github.com/NakedFlower/Commute/internal/slackauth"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.SigningSecret == "" {
		log.Printf("WARNING: SLACK_SIGNING_SECRET not set, requests will not be verified")
	}
	if cfg.BotToken == "" {
		log.Printf("WARNING: SLACK_BOT_TOKEN not set, display names fall back to user IDs")
	}

	store := ledger.NewStore(cfg.LedgerFile, slackapi.NewClient(cfg.BotToken))
	if err := store.Init(); err != nil {
		log.Fatal("failed to init ledger: ", err)
	}

	r := routes.NewRouter(slackauth.NewVerifier(cfg.SigningSecret), store)

	addr := ":" + cfg.Port
	log.Printf("Ledger file: %s", cfg.LedgerFile)
	log.Printf("Server running on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
