package services

import (
	"fmt"
	"time"
)

const durationNotApplicable = "N/A"

// FormatDuration renders d in Swedish as "H timmar och M minuter".
//
// Hours and minutes are truncated toward zero. Minutes below one (including
// negative values) render as "N/A"; hours below one are omitted.
func FormatDuration(d time.Duration) string {
	totalMinutes := int64(d / time.Minute)
	minutes := totalMinutes % 60
	hours := int64(d / time.Hour)

	var h string
	switch {
	case hours == 1:
		h = fmt.Sprintf("%d timme", hours)
	case hours > 1:
		h = fmt.Sprintf("%d timmar", hours)
	}

	var m string
	switch {
	case minutes == 1:
		m = fmt.Sprintf("%d minut", minutes)
	case minutes > 1:
		m = fmt.Sprintf("%d minuter", minutes)
	default:
		m = durationNotApplicable
	}

	if h == "" {
		return m
	}
	return h + " och " + m
}
