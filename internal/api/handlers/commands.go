package handlers

import (
	"log"
	"net/http"
	"strings"
	"trip-bot-service/internal/platform/obs"
	"trip-bot-service/internal/services"

	"github.com/slack-go/slack"
)

// CommandHandler serves the slash commands.
type CommandHandler struct {
	Trips      *services.TripWorkflow
	TimeReport *services.TimeReporter
}

// Trip handles the /take-me-home command, "<from> <to>". The reply is always 200 so Slack shows
// the text; the itineraries follow on response_url.
func (h *CommandHandler) Trip(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	cmd, err := slack.SlashCommandParse(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid form body")
		return
	}
	if strings.TrimSpace(cmd.ResponseURL) == "" {
		writeError(w, r, http.StatusBadRequest, "response_url is required")
		return
	}

	text, err := h.Trips.HandleCommand(r.Context(), cmd.Text, cmd.ResponseURL)
	if err != nil {
		log.Printf("req_id=%s trip command user=%s: %v", obs.RequestID(r.Context()), cmd.UserID, err)
	}
	writeEphemeral(w, r, text)
}

func (h *CommandHandler) TimeReportCommand(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	cmd, err := slack.SlashCommandParse(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid form body")
		return
	}
	if strings.TrimSpace(cmd.ResponseURL) == "" {
		writeError(w, r, http.StatusBadRequest, "response_url is required")
		return
	}

	writeEphemeral(w, r, h.TimeReport.HandleCommand(r.Context(), cmd.ResponseURL))
}
