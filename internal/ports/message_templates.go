package ports

// Port: canned chat texts configured by operators.
type MessageTemplates interface {
	// Return a message for context, falling back to the general texts.
	Message(context string) string
	Authors() []string
}
