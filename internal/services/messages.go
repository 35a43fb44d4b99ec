package services

import (
	"errors"
	"fmt"
	"trip-bot-service/internal/domain"
)

const (
	TripAckMessage   = "Låt mig se efter om det finns en resa hos SL åt dig!"
	TripUsageMessage = "Jag behöver två argument fattaru la? Ex: `/gg t-centr fruän`"

	genericFailureMessage = "Herregud någonting gick skitfel! Jag kanske behöver uppdatera min firmware :joel:. Kan någon snälla kolla loggen?"
)

// UserMessage maps a workflow error to the Swedish text shown in chat.
func UserMessage(err error) string {
	var (
		usage     *domain.UsageError
		notFound  *domain.StationNotFoundError
		lookup    *domain.StationLookupError
		retrieval *domain.TripRetrievalError
	)

	switch {
	case errors.As(err, &usage):
		return TripUsageMessage
	case errors.As(err, &notFound):
		return fmt.Sprintf("Hittade ingen station med namnet %s", notFound.Name)
	case errors.As(err, &lookup):
		return fmt.Sprintf("Hittade ingen station med namnet %s (sökningen misslyckades)", lookup.Name)
	case errors.As(err, &retrieval):
		return fmt.Sprintf("Hittade ingen resa mellan %s och %s", retrieval.From, retrieval.To)
	default:
		return genericFailureMessage
	}
}
