// internal/routes/router.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/NakedFlower/Commute/internal/handlers"
	"github.com/NakedFlower/Commute/internal/ledger"
	"github.com/NakedFlower/Commute/internal/middleware"
	"github.com/NakedFlower/Commute/internal/slackauth"
)

func NewRouter(verifier *slackauth.Verifier, store *ledger.Store) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())

	cmdH := handlers.NewCommandHandler(verifier, store)

	r.GET("/", handlers.Health)
	r.POST("/slack/commands", cmdH.HandleCommand)

	return r
}
