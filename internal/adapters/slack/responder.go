package slack

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
	"trip-bot-service/internal/domain"
	"trip-bot-service/internal/platform/obs"

	slackgo "github.com/slack-go/slack"
)

// ResponseURLDeliverer posts deferred replies to a slash command's
// response_url. One attempt per message.
type ResponseURLDeliverer struct {
	session *http.Client
}

func NewResponseURLDeliverer(timeout time.Duration) *ResponseURLDeliverer {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ResponseURLDeliverer{session: &http.Client{Timeout: timeout}}
}

func (d *ResponseURLDeliverer) DeliverMessage(ctx context.Context, destination string, msg domain.FormattedMessage) (err error) {
	defer obs.Time(ctx, "slack.DeliverMessage")(&err)
	blocks := EncodeMessage(msg)
	return d.post(ctx, destination, webhookMessage("", &blocks))
}

func (d *ResponseURLDeliverer) DeliverText(ctx context.Context, destination string, text string) (err error) {
	defer obs.Time(ctx, "slack.DeliverText")(&err)
	return d.post(ctx, destination, webhookMessage(text, nil))
}

func (d *ResponseURLDeliverer) post(ctx context.Context, destination string, msg *slackgo.WebhookMessage) error {
	if strings.TrimSpace(destination) == "" {
		return fmt.Errorf("slack deliver: empty response_url")
	}
	if err := slackgo.PostWebhookCustomHTTPContext(ctx, destination, d.session, msg); err != nil {
		return fmt.Errorf("slack deliver: %w", err)
	}
	return nil
}
