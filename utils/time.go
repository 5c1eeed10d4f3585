package utils

import (
	"fmt"
	"time"
)

// FormatDuration keeps sub-minute durations as they are (rounded to the
// millisecond) and shows longer ones as days, hours and minutes.
func FormatDuration(duration time.Duration) string {
	if duration < time.Minute {
		if duration < time.Millisecond {
			return duration.String()
		}

		return duration.Round(time.Millisecond).String()
	}

	days := int64(duration / (24 * time.Hour))
	hours := int64(duration/time.Hour) % 24
	minutes := int64(duration/time.Minute) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}

	return fmt.Sprintf("%dm", minutes)
}
