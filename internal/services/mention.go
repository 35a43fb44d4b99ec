package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"trip-bot-service/internal/platform/obs"
	"trip-bot-service/internal/ports"
)

const (
	pricingMessage = "För den nätta kostnaden av 114,805 kr per månad eller 15,8 öre per timme kan du hosta din egen joel-bot! :joel:"

	introductionContext = "introduction"
)

// MentionResponder replies in-channel when the bot is @-mentioned.
type MentionResponder struct {
	Calendar  ports.HolidayCalendar
	Poster    ports.ChatPoster
	Templates ports.MessageTemplates
	Location  *time.Location
	Now       func() time.Time
}

// Handle posts the reply for a mention to channelID.
func (m *MentionResponder) Handle(ctx context.Context, channelID, user, text string) (err error) {
	defer obs.Time(ctx, "mention.Handle")(&err)

	if err := m.Poster.PostMessage(ctx, channelID, m.Reply(ctx, user, text)); err != nil {
		return fmt.Errorf("mention: post reply: %w", err)
	}
	return nil
}

// Reply builds the answer to a mention. The first word of text is the
// mention itself; the second selects the command.
func (m *MentionResponder) Reply(ctx context.Context, user, text string) string {
	words := strings.Fields(text)
	if len(words) > 0 {
		words = words[1:]
	}
	if len(words) == 0 {
		return m.Templates.Message(introductionContext)
	}

	switch words[0] {
	case "tid":
		last, today, err := lastWorkdayOfMonth(ctx, m.Calendar, localNow(m.Now, m.Location))
		if err != nil {
			log.Printf("req_id=%s mention tid: %v", obs.RequestID(ctx), err)
			return genericFailureMessage
		}
		msg := fmt.Sprintf("Okej, jag har kikat i kalendern och det är först *%s* som du behöver tidrapportera!", last.Format(time.DateOnly))
		if today {
			msg += "\n\n... vänta\n... beräknar\n... det är ju idag!"
		}
		return msg
	case "pricing":
		return pricingMessage
	case "skribenter":
		authors := m.Templates.Authors()
		if len(authors) == 0 {
			return "Ingen har skrivit mig, jag bara finns :joel:"
		}
		return "Mina skribenter är " + joinSwedish(authors)
	default:
		return fmt.Sprintf("Är du skön eller <@%s>? Tror du att _jag_ vet något om *%s*? :joel:", user, strings.Join(words, " "))
	}
}

// joinSwedish renders "a, b och c".
func joinSwedish(items []string) string {
	if len(items) == 1 {
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " och " + items[len(items)-1]
}
