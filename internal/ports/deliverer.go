package ports

import (
	"context"
	"trip-bot-service/internal/domain"
)

// Port: best-effort delivery to a previously supplied callback destination
// (a Slack response_url). Single attempt; callers only log failures.
type Deliverer interface {
	DeliverMessage(ctx context.Context, destination string, msg domain.FormattedMessage) error
	DeliverText(ctx context.Context, destination string, text string) error
}

// Port: posting to a named chat channel outside of a request/response cycle.
type ChatPoster interface {
	ChannelIDByName(ctx context.Context, name string) (string, error)
	PostMessage(ctx context.Context, channelID string, text string) error
}
