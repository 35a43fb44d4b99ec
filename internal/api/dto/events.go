package dto

// ChallengeResponse echoes the Events API url_verification challenge.
type ChallengeResponse struct {
	Challenge string `json:"challenge"`
}
