package slack

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"trip-bot-service/internal/platform/obs"

	slackgo "github.com/slack-go/slack"
)

// Client posts as the bot user through the Slack Web API.
type Client struct {
	api *slackgo.Client
}

// NewClient builds a Web API client. baseURL overrides slack.com/api when set.
func NewClient(token, baseURL string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("slack: token is empty")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	opts := []slackgo.Option{slackgo.OptionHTTPClient(&http.Client{Timeout: timeout})}
	if strings.TrimSpace(baseURL) != "" {
		// slack-go appends method names directly to the API URL.
		opts = append(opts, slackgo.OptionAPIURL(strings.TrimRight(baseURL, "/")+"/"))
	}
	return &Client{api: slackgo.New(token, opts...)}, nil
}

// ChannelIDByName pages through conversations.list until name is found.
func (c *Client) ChannelIDByName(ctx context.Context, name string) (id string, err error) {
	defer obs.Time(ctx, "slack.ChannelIDByName")(&err)

	name = strings.TrimPrefix(name, "#")
	params := &slackgo.GetConversationsParameters{
		ExcludeArchived: true,
		Limit:           200,
		Types:           []string{"private_channel", "public_channel"},
	}
	for {
		channels, next, err := c.api.GetConversationsContext(ctx, params)
		if err != nil {
			return "", fmt.Errorf("slack conversations.list: %w", err)
		}

		for _, ch := range channels {
			if ch.Name == name {
				return ch.ID, nil
			}
		}

		if next == "" {
			return "", fmt.Errorf("slack: channel %q not found", name)
		}
		params.Cursor = next
	}
}

// PostMessage sends text to channelID via chat.postMessage.
func (c *Client) PostMessage(ctx context.Context, channelID string, text string) (err error) {
	defer obs.Time(ctx, "slack.PostMessage")(&err)

	if _, _, err := c.api.PostMessageContext(ctx, channelID, slackgo.MsgOptionText(text, false)); err != nil {
		return fmt.Errorf("slack chat.postMessage: %w", err)
	}
	return nil
}
