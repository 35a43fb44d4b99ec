package slack

import (
	"fmt"
	"net/http"

	slackgo "github.com/slack-go/slack"
)

// VerifyRequest checks the v0 signature Slack puts on body. Timestamps more
// than five minutes off are rejected.
func VerifyRequest(header http.Header, body []byte, secret string) error {
	sv, err := slackgo.NewSecretsVerifier(header, secret)
	if err != nil {
		return fmt.Errorf("slack: verify request: %w", err)
	}
	if _, err := sv.Write(body); err != nil {
		return fmt.Errorf("slack: verify request: %w", err)
	}
	if err := sv.Ensure(); err != nil {
		return fmt.Errorf("slack: verify request: %w", err)
	}
	return nil
}
