// internal/handlers/commands.go
package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/NakedFlower/Commute/internal/ledger"
	"github.com/NakedFlower/Commute/internal/models"
	"github.com/NakedFlower/Commute/internal/slackauth"
)

type CommandHandler struct {
	Verifier *slackauth.Verifier
	Store    *ledger.Store
}

func NewCommandHandler(v *slackauth.Verifier, s *ledger.Store) *CommandHandler {
	return &CommandHandler{Verifier: v, Store: s}
}

// ephemeral builds a Slack command response visible only to the requester.
// Slack expects HTTP 200 for these even when the text reports a failure.
func ephemeral(text string) gin.H {
	return gin.H{
		"response_type": "ephemeral",
		"text":          text,
	}
}

// HandleCommand processes a Slack slash command: verify the request came from
// Slack, parse the form payload, and record the event in the ledger.
func (h *CommandHandler) HandleCommand(c *gin.Context) {
	// The signature covers the raw bytes, so the body is read once, before
	// any form parsing.
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read body"})
		return
	}

	timestamp := c.GetHeader("X-Slack-Request-Timestamp")
	signature := c.GetHeader("X-Slack-Signature")
	if !h.Verifier.Verify(body, timestamp, signature) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	form, err := url.ParseQuery(string(body))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form body"})
		return
	}

	cmd := models.SlashCommand{
		Command:  form.Get("command"),
		Text:     form.Get("text"),
		UserID:   form.Get("user_id"),
		UserName: form.Get("user_name"),
	}

	kind, ok := models.ParseEventKind(cmd.CommandType())
	if !ok {
		c.JSON(http.StatusOK, ephemeral(fmt.Sprintf("❌ Unsupported command: %s", cmd.Command)))
		return
	}

	recorded, err := h.Store.Record(cmd.UserID, kind)
	if err != nil {
		log.Printf("record failed for %s (%s): %v", cmd.UserID, kind, err)
		c.JSON(http.StatusOK, ephemeral(fmt.Sprintf("❌ Failed to record %s: %v", kind.Label(), err)))
		return
	}

	c.JSON(http.StatusOK, ephemeral(fmt.Sprintf("%s *%s* recorded at *%s*", kind.Emoji(), kind.Label(), recorded)))
}
