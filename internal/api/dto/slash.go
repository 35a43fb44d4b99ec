package dto

// SlashResponse is the immediate reply to a slash command.
type SlashResponse struct {
	ResponseType string `json:"response_type"`
	Text         string `json:"text"`
}
