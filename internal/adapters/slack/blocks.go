package slack

import (
	"trip-bot-service/internal/domain"

	slackgo "github.com/slack-go/slack"
)

const ephemeral = "ephemeral"

func markdown(s string) *slackgo.TextBlockObject {
	return slackgo.NewTextBlockObject(slackgo.MarkdownType, s, false, false)
}

// EncodeMessage converts a formatted message to Block Kit.
func EncodeMessage(msg domain.FormattedMessage) slackgo.Blocks {
	blocks := make([]slackgo.Block, 0, len(msg.Blocks))
	for _, b := range msg.Blocks {
		switch b.Kind {
		case domain.BlockDivider:
			blocks = append(blocks, slackgo.NewDividerBlock())
		case domain.BlockSection:
			if len(b.Fields) > 0 {
				fields := make([]*slackgo.TextBlockObject, 0, len(b.Fields))
				for _, f := range b.Fields {
					fields = append(fields, markdown(f))
				}
				blocks = append(blocks, slackgo.NewSectionBlock(nil, fields, nil))
			} else {
				blocks = append(blocks, slackgo.NewSectionBlock(markdown(b.Text), nil, nil))
			}
		case domain.BlockContext:
			blocks = append(blocks, slackgo.NewContextBlock("", markdown(b.Text)))
		}
	}
	return slackgo.Blocks{BlockSet: blocks}
}

// webhookMessage is an ephemeral response_url reply; blocks win over text.
func webhookMessage(text string, blocks *slackgo.Blocks) *slackgo.WebhookMessage {
	return &slackgo.WebhookMessage{ResponseType: ephemeral, Text: text, Blocks: blocks}
}
