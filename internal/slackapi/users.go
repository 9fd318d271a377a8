// internal/slackapi/users.go
package slackapi

import (
	"log"

	"github.com/slack-go/slack"
)

// Client resolves Slack user IDs to display names via the users.info API.
// With no bot token configured it degrades to echoing the user ID.
type Client struct {
	api *slack.Client
}

func NewClient(botToken string) *Client {
	if botToken == "" {
		return &Client{}
	}
	return &Client{api: slack.New(botToken)}
}

// DisplayName returns the best human-readable name for userID. Lookup
// failures are logged and degrade to the raw ID; the caller never has to
// handle them.
func (c *Client) DisplayName(userID string) (string, error) {
	if c.api == nil {
		return userID, nil
	}

	user, err := c.api.GetUserInfo(userID)
	if err != nil {
		log.Printf("users.info lookup failed for %s: %v", userID, err)
		return userID, nil
	}

	// real_name > display_name > name, same precedence Slack clients use.
	switch {
	case user.RealName != "":
		return user.RealName, nil
	case user.Profile.DisplayName != "":
		return user.Profile.DisplayName, nil
	case user.Name != "":
		return user.Name, nil
	}
	return userID, nil
}
