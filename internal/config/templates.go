package config

import (
	"math/rand/v2"
	"strings"
)

// Templates builds chat messages from the configured beginning, middle and
// end parts.
type Templates struct {
	messages MessagesConfig
	pick     func(n int) int
}

// NewTemplates uses pick to choose among candidates; nil picks at random.
func NewTemplates(messages MessagesConfig, pick func(n int) int) *Templates {
	if pick == nil {
		pick = rand.IntN
	}
	return &Templates{messages: messages, pick: pick}
}

// Message joins one text per part for context, using the general texts for
// parts that do not mention context.
func (t *Templates) Message(context string) string {
	return strings.Join([]string{
		t.part(t.messages.Beginning, context),
		t.part(t.messages.Middle, context),
		t.part(t.messages.End, context),
	}, "\n")
}

func (t *Templates) part(p Part, context string) string {
	candidates, ok := p[context]
	if !ok || len(candidates) == 0 {
		candidates = p[generalContext]
	}
	if len(candidates) == 0 {
		return ""
	}
	return candidates[t.pick(len(candidates))]
}

func (t *Templates) Authors() []string {
	return t.messages.Authors
}
