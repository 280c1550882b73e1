package ingest

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/piresc/ridermap/internal/pkg/models"
)

// serialEpoch is day zero of spreadsheet serial dates
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

const (
	secondsPerDay = 86400
	// 9999-12-31
	maxSerial = 2958465
)

var clockLayouts = []string{"15:04:05", "15:04"}

// SerialToTime converts a spreadsheet serial date (one day = 1.0) to a
// timestamp rounded to the nearest second.
func SerialToTime(serial float64) (time.Time, bool) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) {
		return time.Time{}, false
	}
	if serial < -maxSerial || serial > maxSerial {
		return time.Time{}, false
	}
	seconds := math.Round(serial * secondsPerDay)
	days := math.Floor(seconds / secondsPerDay)
	rest := seconds - days*secondsPerDay
	return serialEpoch.AddDate(0, 0, int(days)).Add(time.Duration(rest) * time.Second), true
}

func parseClock(s string) (time.Time, bool) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeClock renders a DP Time or SLA cell as HH:MM. Numbers are serial
// dates; strings are HH:MM:SS or HH:MM. Anything else renders empty.
func NormalizeClock(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case time.Time:
		return models.FormatClock(v)
	case float64:
		if t, ok := SerialToTime(v); ok {
			return models.FormatClock(t)
		}
	case string:
		s := strings.TrimSpace(v)
		if t, ok := parseClock(s); ok {
			return models.FormatClock(t)
		}
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			if t, ok := SerialToTime(serial); ok {
				return models.FormatClock(t)
			}
		}
	}
	return ""
}

// ClassifyTimeCheck maps any Time Check cell to exactly one status and never fails
func ClassifyTimeCheck(value any) (status models.TimeCheckStatus) {
	defer func() {
		if r := recover(); r != nil {
			status = models.TimeCheckNotYet
		}
	}()

	switch v := value.(type) {
	case nil:
		return models.TimeCheckNotYet
	case time.Time, time.Duration:
		return models.TimeCheckChecked
	case string:
		return classifyTimeCheckText(v)
	case float64:
		// any finite number is a timestamp offset
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return models.TimeCheckNotYet
		}
		return models.TimeCheckChecked
	default:
		return models.TimeCheckNotYet
	}
}

func classifyTimeCheckText(raw string) models.TimeCheckStatus {
	s := strings.TrimSpace(raw)
	if s == "" {
		return models.TimeCheckNotYet
	}
	if strings.EqualFold(s, "pending") {
		return models.TimeCheckPending
	}
	if _, ok := parseClock(s); ok {
		return models.TimeCheckChecked
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return ClassifyTimeCheck(n)
	}
	if _, err := dateparse.ParseAny(s); err == nil {
		return models.TimeCheckChecked
	}
	return models.TimeCheckNotYet
}
