package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"trip-bot-service/internal/api/dto"
	"trip-bot-service/internal/platform/obs"
	"trip-bot-service/internal/ports"
	"trip-bot-service/internal/services"

	"github.com/slack-go/slack/slackevents"
)

const maxEventBody = 1 << 20

type EventHandler struct {
	Mentions *services.MentionResponder
	Runner   ports.TaskRunner
}

// Events serves the Events API: URL verification and app mentions.
// Mentions are acknowledged at once and answered in the background.
// Request authenticity is checked by the signing middleware, not the token.
func (h *EventHandler) Events(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxEventBody))
	r.Body.Close()
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "read body")
		return
	}

	ev, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid event body")
		return
	}

	switch ev.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid challenge")
			return
		}
		writeJSON(w, r, http.StatusOK, dto.ChallengeResponse{Challenge: challenge.Challenge})
	case slackevents.CallbackEvent:
		switch inner := ev.InnerEvent.Data.(type) {
		case *slackevents.AppMentionEvent:
			channel, user, text := inner.Channel, inner.User, inner.Text
			h.Runner.Go(r.Context(), "mention", func(ctx context.Context) {
				if err := h.Mentions.Handle(ctx, channel, user, text); err != nil {
					log.Printf("req_id=%s mention channel=%s: %v", obs.RequestID(ctx), channel, err)
				}
			})
		default:
			log.Printf("req_id=%s ignoring event type=%s", obs.RequestID(r.Context()), ev.InnerEvent.Type)
		}
		w.WriteHeader(http.StatusOK)
	default:
		writeError(w, r, http.StatusBadRequest, "unsupported request type")
	}
}
