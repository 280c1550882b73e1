package models

import "time"

// ClockLayout is the 24h clock shown for SLA, DP and time check values
const ClockLayout = "15:04"

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// FormatClock renders the time of day of t as HH:MM
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}
