package api

import (
	"net/http"
	"trip-bot-service/internal/api/handlers"
	"trip-bot-service/internal/ports"
	"trip-bot-service/internal/services"
)

// Deps are the services the HTTP layer dispatches to.
type Deps struct {
	Trips      *services.TripWorkflow
	TimeReport *services.TimeReporter
	Mentions   *services.MentionResponder
	Runner     ports.TaskRunner

	// SigningSecret enables Slack request verification when set.
	SigningSecret string
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
func NewRouter(deps Deps) http.Handler {
	commands := &handlers.CommandHandler{Trips: deps.Trips, TimeReport: deps.TimeReport}
	events := &handlers.EventHandler{Mentions: deps.Mentions, Runner: deps.Runner}

	signed := func(h http.HandlerFunc) http.Handler {
		return slackSignatureMiddleware(deps.SigningSecret, h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handlers.Health)
	mux.Handle("/take-me-home", signed(commands.Trip))
	mux.Handle("/time-report", signed(commands.TimeReportCommand))
	mux.Handle("/slack-request", signed(events.Events))

	return requestIDMiddleware(loggingMiddleware(mux))
}
