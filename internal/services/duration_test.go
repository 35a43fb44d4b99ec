package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"zero", 0, "N/A"},
		{"negative", -5 * time.Minute, "N/A"},
		{"under a minute", 59 * time.Second, "N/A"},
		{"one minute", time.Minute, "1 minut"},
		{"twenty minutes", 20 * time.Minute, "20 minuter"},
		{"one hour", time.Hour, "1 timme och N/A"},
		{"one hour one minute", time.Hour + time.Minute, "1 timme och 1 minut"},
		{"two hours five minutes", 2*time.Hour + 5*time.Minute, "2 timmar och 5 minuter"},
		{"seconds truncated", 3*time.Minute + 59*time.Second, "3 minuter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.in))
		})
	}
}
